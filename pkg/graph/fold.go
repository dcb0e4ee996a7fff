package graph

// Folder holds the four handlers of a catamorphism over the expression
// tree. All four must be non-nil.
type Folder[A comparable, R any] struct {
	OnEmpty   func() R
	OnVertex  func(v A) R
	OnOverlay func(l, r R) R
	OnConnect func(l, r R) R
}

// Fold reduces the expression tree bottom-up with the given handlers.
//
// Unlike the canonical relation, Fold observes tree shape: two extensionally
// equal graphs with different shapes fold differently. Use it for
// serialization and visitors where the expression structure matters; use
// Relation and the query API when only the denoted graph matters.
func Fold[A comparable, R any](g *Graph[A], f Folder[A, R]) R {
	switch g.op {
	case opVertex:
		return f.OnVertex(g.v)
	case opOverlay:
		return f.OnOverlay(Fold(g.l, f), Fold(g.r, f))
	case opConnect:
		return f.OnConnect(Fold(g.l, f), Fold(g.r, f))
	default:
		return f.OnEmpty()
	}
}

// Map applies fn to every vertex value, preserving tree shape and kind.
// It is the functorial lift: Map does not force canonicalization, and
// vertices that collide under fn are merged only when a later
// canonicalization reduces the result.
func Map[A, B comparable](g *Graph[A], fn func(A) B) *Graph[B] {
	out := &Graph[B]{op: g.op, kind: g.kind}
	switch g.op {
	case opVertex:
		out.v = fn(g.v)
	case opOverlay, opConnect:
		out.l = Map(g.l, fn)
		out.r = Map(g.r, fn)
	}
	return out
}

// Transpose returns the graph with every edge reversed. It is defined
// structurally: the operands of every Connect node in the tree are swapped,
// so the whole subtree's connect direction flips. Transpose is an
// involution: Transpose(Transpose(g)) equals g.
func Transpose[A comparable](g *Graph[A]) *Graph[A] {
	switch g.op {
	case opOverlay:
		return &Graph[A]{op: opOverlay, l: Transpose(g.l), r: Transpose(g.r), kind: g.kind}
	case opConnect:
		return &Graph[A]{op: opConnect, l: Transpose(g.r), r: Transpose(g.l), kind: g.kind}
	default:
		// Empty and Vertex are fixed points; immutability makes sharing safe.
		return g
	}
}
