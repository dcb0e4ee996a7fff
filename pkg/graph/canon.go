package graph

import (
	"iter"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/relation"
)

// CanonOption configures a single canonicalization request.
type CanonOption[A comparable] func(*canonConfig[A])

type canonConfig[A comparable] struct {
	eq     relation.Equivalence[A]
	custom bool
}

// WithEquivalence canonicalizes under a caller-supplied equivalence instead
// of structural equality. The per-node memo is keyed to the structural
// default, so requests with a custom equivalence recompute the fold every
// time; the graph's cached relation is neither consulted nor overwritten.
func WithEquivalence[A comparable](eq relation.Equivalence[A]) CanonOption[A] {
	return func(c *canonConfig[A]) {
		c.eq = eq
		c.custom = true
	}
}

// Relation reduces the graph to its canonical relation, with the closure
// matching the graph's kind applied. The reduction is memoized per node:
// calling Relation twice on the same instance folds the tree at most once.
// Structurally equal but distinct instances fold independently and yield
// equal relations.
func (g *Graph[A]) Relation(opts ...CanonOption[A]) *relation.Relation[A] {
	cfg := canonConfig[A]{eq: relation.Structural[A]()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.custom {
		return applyKind(g.rawRelation(cfg.eq, false), g.kind)
	}

	if r := g.closed.Load(); r != nil {
		return r
	}
	r := applyKind(g.rawRelation(cfg.eq, true), g.kind)
	// First store wins; a concurrent recomputation produced an equal value.
	g.closed.CompareAndSwap(nil, r)
	return g.closed.Load()
}

// rawRelation folds the tree to the kind-agnostic relation.
// With memo set, each node caches its result through a write-once pointer.
func (g *Graph[A]) rawRelation(eq relation.Equivalence[A], memo bool) *relation.Relation[A] {
	if memo {
		if r := g.raw.Load(); r != nil {
			return r
		}
	}

	var r *relation.Relation[A]
	switch g.op {
	case opEmpty:
		r = relation.Empty(eq)
	case opVertex:
		r = relation.Singleton(eq, g.v)
	case opOverlay:
		r = g.l.rawRelation(eq, memo).Union(g.r.rawRelation(eq, memo))
	case opConnect:
		lr := g.l.rawRelation(eq, memo)
		rr := g.r.rawRelation(eq, memo)
		b := relation.NewBuilder(eq)
		b.Merge(lr)
		b.Merge(rr)
		for a := range lr.Vertices() {
			for c := range rr.Vertices() {
				b.AddEdge(a, c)
			}
		}
		r = b.Relation()
	default:
		panic("graph: malformed expression node")
	}

	if memo {
		g.raw.CompareAndSwap(nil, r)
		return g.raw.Load()
	}
	return r
}

// applyKind applies the closure matching kind k.
func applyKind[A comparable](r *relation.Relation[A], k Kind) *relation.Relation[A] {
	switch k {
	case Undirected:
		return r.Symmetric()
	case Reflexive:
		return r.Reflexive()
	case Transitive:
		return r.Transitive()
	default:
		return r
	}
}

// Equal reports whether a and b denote the same graph: equal vertex sets and
// equal edge sets of their canonical relations. Comparing graphs of
// different kinds returns a KIND_MISMATCH error; the comparison would be
// meaningless because each side's relation is closed under different rules.
func Equal[A comparable](a, b *Graph[A], opts ...CanonOption[A]) (bool, error) {
	if a.kind != b.kind {
		return false, errors.New(errors.ErrCodeKindMismatch,
			"cannot compare %s graph with %s graph", a.kind, b.kind)
	}
	return a.Relation(opts...).Equal(b.Relation(opts...)), nil
}

// IsSubgraphOf reports whether every vertex and edge of a is present in b.
// Comparing graphs of different kinds returns a KIND_MISMATCH error.
func IsSubgraphOf[A comparable](a, b *Graph[A], opts ...CanonOption[A]) (bool, error) {
	if a.kind != b.kind {
		return false, errors.New(errors.ErrCodeKindMismatch,
			"cannot compare %s graph with %s graph", a.kind, b.kind)
	}
	return a.Relation(opts...).SubsetOf(b.Relation(opts...)), nil
}

// hashKindMix separates the hash spaces of the four kinds so that re-tagged
// graphs do not collide by construction.
const hashKindMix = 0x9e3779b97f4a7c15

// Hash returns an order-independent hash of the graph's canonical relation
// mixed with its kind. Equal graphs always hash equal.
func (g *Graph[A]) Hash(opts ...CanonOption[A]) uint64 {
	return g.Relation(opts...).Hash() + uint64(g.kind)*hashKindMix
}

// Vertices returns a restartable iterator over the canonical vertex set.
// The order is an implementation detail and must not be relied on.
func (g *Graph[A]) Vertices() iter.Seq[A] {
	return g.Relation().Vertices()
}

// Edges returns a restartable iterator over the canonical edge set.
// The order is an implementation detail and must not be relied on.
func (g *Graph[A]) Edges() iter.Seq[relation.Pair[A]] {
	return g.Relation().Edges()
}

// Order returns the number of vertices in the canonical relation.
func (g *Graph[A]) Order() int { return g.Relation().Order() }

// Size returns the number of edges in the canonical relation.
func (g *Graph[A]) Size() int { return g.Relation().Size() }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[A]) IsEmpty() bool { return g.Relation().IsEmpty() }

// HasVertex reports whether v is a vertex of the canonical relation.
func (g *Graph[A]) HasVertex(v A) bool { return g.Relation().ContainsVertex(v) }

// HasEdge reports whether the ordered pair (from, to) is an edge of the
// canonical relation. For undirected graphs both orientations are present.
func (g *Graph[A]) HasEdge(from, to A) bool { return g.Relation().ContainsEdge(from, to) }

// Sources returns the vertices with no incoming edges.
// The order is not guaranteed. Returns nil for an empty graph.
func (g *Graph[A]) Sources() []A {
	r := g.Relation()
	hasIncoming := make(map[A]bool, r.Order())
	for e := range r.Edges() {
		hasIncoming[e.To] = true
	}
	var out []A
	for v := range r.Vertices() {
		if !hasIncoming[v] {
			out = append(out, v)
		}
	}
	return out
}

// Sinks returns the vertices with no outgoing edges.
// The order is not guaranteed. Returns nil for an empty graph.
func (g *Graph[A]) Sinks() []A {
	r := g.Relation()
	hasOutgoing := make(map[A]bool, r.Order())
	for e := range r.Edges() {
		hasOutgoing[e.From] = true
	}
	var out []A
	for v := range r.Vertices() {
		if !hasOutgoing[v] {
			out = append(out, v)
		}
	}
	return out
}
