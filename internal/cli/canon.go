package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/graphio"
)

// canonCommand creates the canon command: reduce a graph expression file to
// its canonical relation and print it as JSON.
func (c *CLI) canonCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "canon [file]",
		Short: "Reduce a graph expression to its canonical relation",
		Long: `Canon reads a tagged-tree graph file, applies the closure matching the
graph's kind, and prints the canonical relation as sorted JSON:
{"vertices":[...], "edges":[[from,to], ...]}.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0])
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			rel := g.Relation()
			data, err := graphio.MarshalRelation(rel)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Canonicalized %d vertices, %d edges", rel.Order(), rel.Size()))

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			return os.WriteFile(output, append(data, '\n'), 0644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the relation to a file instead of stdout")
	return cmd
}
