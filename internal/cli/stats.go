package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command: a structural summary of a graph
// file computed from its canonical relation.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a graph's canonical structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0])
			if err != nil {
				return err
			}

			rel := g.Relation()
			density := 0.0
			if n := rel.Order(); n > 0 {
				density = float64(rel.Size()) / float64(n*n)
			}

			sources := g.Sources()
			sinks := g.Sinks()
			slices.Sort(sources)
			slices.Sort(sinks)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(args[0]))
			row := func(label, value string) {
				fmt.Fprintf(out, "%s %s\n", styleLabel.Render(label), styleValue.Render(value))
			}
			row("kind", g.Kind().String())
			row("vertices", fmt.Sprintf("%d", rel.Order()))
			row("edges", fmt.Sprintf("%d", rel.Size()))
			row("density", fmt.Sprintf("%.3f", density))
			row("sources", joinOrDash(sources))
			row("sinks", joinOrDash(sinks))
			return nil
		},
	}
}

func joinOrDash(vs []string) string {
	if len(vs) == 0 {
		return "-"
	}
	return strings.Join(vs, ", ")
}
