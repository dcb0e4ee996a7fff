package graph_test

import (
	"fmt"
	"sort"

	"github.com/relgraph/relgraph/pkg/graph"
)

func ExampleConnect() {
	// Connect draws an edge from every vertex on the left to every
	// vertex on the right.
	left := graph.Overlay(graph.Vertex("a"), graph.Vertex("b"))
	g := graph.Connect(left, graph.Vertex("c"))

	fmt.Println("vertices:", g.Order())
	fmt.Println("edges:", g.Size())
	fmt.Println("a->c:", g.HasEdge("a", "c"))
	fmt.Println("b->c:", g.HasEdge("b", "c"))
	fmt.Println("a->b:", g.HasEdge("a", "b"))
	// Output:
	// vertices: 3
	// edges: 2
	// a->c: true
	// b->c: true
	// a->b: false
}

func ExampleEqual() {
	// Equality is extensional: two different expressions denoting the
	// same vertex and edge sets compare equal.
	a := graph.Edge("x", "y")
	b := graph.Overlay(graph.Edge("x", "y"), graph.Vertex("x"))

	eq, err := graph.Equal(a, b)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("equal:", eq)
	// Output:
	// equal: true
}

func ExamplePath() {
	g := graph.Path([]string{"boot", "init", "serve"})

	sources := g.Sources()
	sinks := g.Sinks()
	sort.Strings(sources)
	sort.Strings(sinks)

	fmt.Println("sources:", sources)
	fmt.Println("sinks:", sinks)
	// Output:
	// sources: [boot]
	// sinks: [serve]
}

func ExampleAsUndirected() {
	g := graph.AsUndirected(graph.Edge(1, 2))

	fmt.Println("kind:", g.Kind())
	fmt.Println("1->2:", g.HasEdge(1, 2))
	fmt.Println("2->1:", g.HasEdge(2, 1))
	// Output:
	// kind: undirected
	// 1->2: true
	// 2->1: true
}

func ExampleWithKind() {
	// A transitive graph closes its edge set on canonicalization.
	g := graph.WithKind(graph.Path([]string{"a", "b", "c"}), graph.Transitive)

	fmt.Println("a->c:", g.HasEdge("a", "c"))
	fmt.Println("edges:", g.Size())
	// Output:
	// a->c: true
	// edges: 3
}
