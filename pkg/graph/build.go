package graph

// Edge returns the graph with the single directed edge (a, b):
// Connect(Vertex(a), Vertex(b)).
func Edge[A comparable](a, b A) *Graph[A] {
	return Connect(Vertex(a), Vertex(b))
}

// FromVertices returns the edgeless graph containing every vertex in vs:
// the overlay of their singleton graphs. An empty slice yields Empty.
func FromVertices[A comparable](vs []A) *Graph[A] {
	g := Empty[A]()
	for _, v := range vs {
		g = Overlay(g, Vertex(v))
	}
	return g
}

// Path returns the graph connecting consecutive elements of vs:
// v1→v2, v2→v3, and so on. An empty slice yields Empty; a single element
// yields its Vertex. The path is not transitively closed - (v1,v3) is absent
// from a three-element path.
func Path[A comparable](vs []A) *Graph[A] {
	switch len(vs) {
	case 0:
		return Empty[A]()
	case 1:
		return Vertex(vs[0])
	}
	g := Empty[A]()
	for i := 0; i+1 < len(vs); i++ {
		g = Overlay(g, Edge(vs[i], vs[i+1]))
	}
	return g
}

// Clique returns Connect(FromVertices(vs), FromVertices(vs)): every ordered
// pair of vs, including the self-pairs (v,v). This is the literal
// cross-product of the algebra, not a loop-free simple-graph clique; callers
// wanting no self-loops must filter them from the relation themselves.
func Clique[A comparable](vs []A) *Graph[A] {
	all := FromVertices(vs)
	return Connect(all, all)
}

// Star returns Connect(Vertex(center), FromVertices(leaves)): an edge from
// center to every leaf. No edges exist among the leaves.
func Star[A comparable](center A, leaves []A) *Graph[A] {
	return Connect(Vertex(center), FromVertices(leaves))
}
