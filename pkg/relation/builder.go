package relation

// Builder accumulates vertices and edges and freezes them into a Relation.
// It exists so canonicalization can assemble a relation incrementally without
// exposing mutation on Relation itself. The zero value is not usable - use
// NewBuilder.
//
// A Builder is not safe for concurrent use. After Relation is called the
// builder must not be reused.
type Builder[A any] struct {
	rel  *Relation[A]
	done bool
}

// NewBuilder returns an empty builder under the given equivalence.
func NewBuilder[A any](eq Equivalence[A]) *Builder[A] {
	return &Builder[A]{rel: Empty(eq)}
}

// AddVertex inserts v into the vertex set. Duplicate insertions are no-ops.
func (b *Builder[A]) AddVertex(v A) {
	b.checkLive()
	b.rel.addVertex(v)
}

// AddEdge inserts the ordered pair (from, to) into the edge set and both
// endpoints into the vertex set. Duplicate insertions are no-ops.
func (b *Builder[A]) AddEdge(from, to A) {
	b.checkLive()
	b.rel.addVertex(from)
	b.rel.addVertex(to)
	b.rel.addEdge(from, to)
}

// Merge inserts every vertex and edge of other into the builder.
func (b *Builder[A]) Merge(other *Relation[A]) {
	b.checkLive()
	for v := range other.Vertices() {
		b.rel.addVertex(v)
	}
	for e := range other.Edges() {
		b.rel.addEdge(e.From, e.To)
	}
}

// Relation freezes the builder and returns the accumulated relation.
// The builder must not be used afterwards.
func (b *Builder[A]) Relation() *Relation[A] {
	b.checkLive()
	b.done = true
	return b.rel
}

// checkLive panics if the builder was already frozen. Reusing a frozen
// builder would mutate a published Relation; that is a programming error,
// not a recoverable condition.
func (b *Builder[A]) checkLive() {
	if b.done {
		panic("relation: builder used after Relation()")
	}
}
