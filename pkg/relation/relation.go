package relation

import "iter"

// Pair is an ordered edge (From, To) between two vertices.
type Pair[A any] struct {
	From A
	To   A
}

// Relation is the canonical (vertex set, edge set) form of an algebraic
// graph. Relations are immutable: every operation returns a new value and
// the receiver is never modified. Use a Builder to construct one.
//
// Both sets are stored as hash buckets keyed by the equivalence's hash, so
// membership and insertion are amortized O(1) regardless of the element type.
type Relation[A any] struct {
	eq       Equivalence[A]
	vertices map[uint64][]A
	edges    map[uint64][]Pair[A]
	order    int
	size     int
}

// Empty returns the relation with no vertices and no edges under eq.
func Empty[A any](eq Equivalence[A]) *Relation[A] {
	return &Relation[A]{
		eq:       eq,
		vertices: make(map[uint64][]A),
		edges:    make(map[uint64][]Pair[A]),
	}
}

// Singleton returns the relation containing exactly one vertex and no edges.
func Singleton[A any](eq Equivalence[A], v A) *Relation[A] {
	r := Empty(eq)
	r.addVertex(v)
	return r
}

// Order returns the number of vertices.
func (r *Relation[A]) Order() int { return r.order }

// Size returns the number of edges.
func (r *Relation[A]) Size() int { return r.size }

// IsEmpty reports whether the relation has no vertices.
// A relation with no vertices cannot have edges.
func (r *Relation[A]) IsEmpty() bool { return r.order == 0 }

// ContainsVertex reports whether v is a member of the vertex set.
func (r *Relation[A]) ContainsVertex(v A) bool {
	for _, m := range r.vertices[r.eq.Hash(v)] {
		if r.eq.Equal(m, v) {
			return true
		}
	}
	return false
}

// ContainsEdge reports whether the ordered pair (from, to) is a member of
// the edge set.
func (r *Relation[A]) ContainsEdge(from, to A) bool {
	key := pairHash(r.eq.Hash(from), r.eq.Hash(to))
	for _, e := range r.edges[key] {
		if r.eq.Equal(e.From, from) && r.eq.Equal(e.To, to) {
			return true
		}
	}
	return false
}

// Vertices returns a restartable iterator over the vertex set.
// The order is not specified and must not be relied on.
func (r *Relation[A]) Vertices() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, bucket := range r.vertices {
			for _, v := range bucket {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Edges returns a restartable iterator over the edge set.
// The order is not specified and must not be relied on.
func (r *Relation[A]) Edges() iter.Seq[Pair[A]] {
	return func(yield func(Pair[A]) bool) {
		for _, bucket := range r.edges {
			for _, e := range bucket {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// VertexSlice returns the vertex set as a freshly allocated slice.
func (r *Relation[A]) VertexSlice() []A {
	out := make([]A, 0, r.order)
	for _, bucket := range r.vertices {
		out = append(out, bucket...)
	}
	return out
}

// EdgeSlice returns the edge set as a freshly allocated slice.
func (r *Relation[A]) EdgeSlice() []Pair[A] {
	out := make([]Pair[A], 0, r.size)
	for _, bucket := range r.edges {
		out = append(out, bucket...)
	}
	return out
}

// Equal reports whether r and other have equal vertex sets and equal edge
// sets. Membership is judged by the receiver's equivalence.
func (r *Relation[A]) Equal(other *Relation[A]) bool {
	if r.order != other.order || r.size != other.size {
		return false
	}
	return r.SubsetOf(other) && other.SubsetOf(r)
}

// SubsetOf reports whether every vertex and every edge of r is present in
// other. The empty relation is a subset of every relation.
func (r *Relation[A]) SubsetOf(other *Relation[A]) bool {
	if r.order > other.order || r.size > other.size {
		return false
	}
	for v := range r.Vertices() {
		if !other.ContainsVertex(v) {
			return false
		}
	}
	for e := range r.Edges() {
		if !other.ContainsEdge(e.From, e.To) {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash of the relation. Equal relations
// always hash equal; the converse is not guaranteed.
func (r *Relation[A]) Hash() uint64 {
	var vsum, esum uint64
	for v := range r.Vertices() {
		vsum += r.eq.Hash(v)
	}
	for e := range r.Edges() {
		esum += pairHash(r.eq.Hash(e.From), r.eq.Hash(e.To))
	}
	return setHash(vsum, esum)
}

// Union returns the relation whose vertex and edge sets are the unions of
// both operands' sets. Neither operand is modified.
func (r *Relation[A]) Union(other *Relation[A]) *Relation[A] {
	out := r.clone()
	for v := range other.Vertices() {
		out.addVertex(v)
	}
	for e := range other.Edges() {
		out.addEdge(e.From, e.To)
	}
	return out
}

// clone returns a deep copy sharing no buckets with the receiver.
func (r *Relation[A]) clone() *Relation[A] {
	out := &Relation[A]{
		eq:       r.eq,
		vertices: make(map[uint64][]A, len(r.vertices)),
		edges:    make(map[uint64][]Pair[A], len(r.edges)),
		order:    r.order,
		size:     r.size,
	}
	for k, bucket := range r.vertices {
		out.vertices[k] = append([]A(nil), bucket...)
	}
	for k, bucket := range r.edges {
		out.edges[k] = append([]Pair[A](nil), bucket...)
	}
	return out
}

// addVertex inserts v if not already present. Internal mutation, used only
// before a relation is published.
func (r *Relation[A]) addVertex(v A) {
	key := r.eq.Hash(v)
	for _, m := range r.vertices[key] {
		if r.eq.Equal(m, v) {
			return
		}
	}
	r.vertices[key] = append(r.vertices[key], v)
	r.order++
}

// addEdge inserts the ordered pair (from, to) if not already present.
// Internal mutation, used only before a relation is published.
func (r *Relation[A]) addEdge(from, to A) {
	key := pairHash(r.eq.Hash(from), r.eq.Hash(to))
	for _, e := range r.edges[key] {
		if r.eq.Equal(e.From, from) && r.eq.Equal(e.To, to) {
			return
		}
	}
	r.edges[key] = append(r.edges[key], Pair[A]{From: from, To: to})
	r.size++
}
