package render

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/relgraph/relgraph/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds a graph-level label with the kind, order, and size.
	Detailed bool

	// Rankdir sets the layout direction (TB, LR, BT, RL). Empty means TB.
	Rankdir string
}

// ToDOT converts a graph's canonical relation to Graphviz DOT.
// Vertices and edges are emitted in sorted order for deterministic output.
func ToDOT[A comparable](g *graph.Graph[A], opts Options) string {
	rel := g.Relation()
	undirected := g.Kind() == graph.Undirected

	names := make([]string, 0, rel.Order())
	for v := range rel.Vertices() {
		names = append(names, fmt.Sprintf("%v", v))
	}
	slices.Sort(names)

	type edge struct{ from, to string }
	edges := make([]edge, 0, rel.Size())
	for e := range rel.Edges() {
		from, to := fmt.Sprintf("%v", e.From), fmt.Sprintf("%v", e.To)
		if undirected && from > to {
			// The symmetric closure holds both orientations; emit one.
			continue
		}
		edges = append(edges, edge{from: from, to: to})
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if c := strings.Compare(a.from, b.from); c != 0 {
			return c
		}
		return strings.Compare(a.to, b.to)
	})

	head, arrow := "digraph", "->"
	if undirected {
		head, arrow = "graph", "--"
	}
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", head)
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	if opts.Detailed {
		fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%s | %d vertices | %d edges", g.Kind(), rel.Order(), rel.Size()))
	}
	buf.WriteString("\n")

	for _, n := range names {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q %s %q;\n", e.from, arrow, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
