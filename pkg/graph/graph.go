package graph

import (
	"sync/atomic"

	"github.com/relgraph/relgraph/pkg/relation"
)

// op discriminates the four shapes of a graph expression.
type op uint8

const (
	opEmpty op = iota
	opVertex
	opOverlay
	opConnect
)

// Graph is an immutable algebraic graph over comparable vertex values.
// Construct one with Empty, Vertex, Overlay, Connect, or the derived
// constructors; the zero value is not usable.
//
// Graphs are persistent: subtrees are shared freely between values and no
// operation ever mutates an existing graph. The memo fields cache the
// canonical relation per instance; they are written at most once and are not
// part of the logical value (two structurally equal graphs are equal
// regardless of cache state).
type Graph[A comparable] struct {
	op   op
	v    A
	l, r *Graph[A]
	kind Kind

	// raw caches the kind-agnostic relation of the subtree; closed caches
	// the relation with the kind's closure applied. Write-once, idempotent
	// under concurrent first access.
	raw    atomic.Pointer[relation.Relation[A]]
	closed atomic.Pointer[relation.Relation[A]]
}

// Empty returns the graph with no vertices and no edges.
func Empty[A comparable]() *Graph[A] {
	return &Graph[A]{op: opEmpty}
}

// Vertex returns the graph containing the single vertex v.
func Vertex[A comparable](v A) *Graph[A] {
	return &Graph[A]{op: opVertex, v: v}
}

// Overlay returns the union of both operands' vertices and edges.
// The result's kind is the join of the operands' kinds (undirected wins).
// O(1): only an expression node is allocated.
func Overlay[A comparable](l, r *Graph[A]) *Graph[A] {
	return &Graph[A]{op: opOverlay, l: l, r: r, kind: joinKind(l.kind, r.kind)}
}

// Connect returns Overlay(l, r) plus every ordered edge (a, b) with a a
// vertex of l and b a vertex of r. The result's kind is the join of the
// operands' kinds (undirected wins).
//
// O(1) here; the cross product is only materialized on canonicalization,
// where it is inherently quadratic in the operands' vertex counts.
func Connect[A comparable](l, r *Graph[A]) *Graph[A] {
	return &Graph[A]{op: opConnect, l: l, r: r, kind: joinKind(l.kind, r.kind)}
}

// Kind returns the graph's kind tag.
func (g *Graph[A]) Kind() Kind { return g.kind }

// WithKind returns a graph with the same structure re-tagged to kind k.
// Subtrees are shared with the receiver; the closure matching k is applied
// on the next canonicalization.
func WithKind[A comparable](g *Graph[A], k Kind) *Graph[A] {
	if g.kind == k {
		return g
	}
	return &Graph[A]{op: g.op, v: g.v, l: g.l, r: g.r, kind: k}
}

// AsDirected re-tags g as directed. See WithKind.
func AsDirected[A comparable](g *Graph[A]) *Graph[A] { return WithKind(g, Directed) }

// AsUndirected re-tags g as undirected; the symmetric closure is applied on
// the next canonicalization. See WithKind.
func AsUndirected[A comparable](g *Graph[A]) *Graph[A] { return WithKind(g, Undirected) }

// ToDirected converts g to directed semantics. The conversion is a re-tag:
// edges already present in the canonical relation (including those added by
// a previous kind's closure on a prior canonicalization of a re-tagged
// ancestor) are not materialized, because closures never alter the
// underlying expression tree.
func ToDirected[A comparable](g *Graph[A]) *Graph[A] { return WithKind(g, Directed) }

// ToUndirected converts g to undirected semantics by re-tagging.
func ToUndirected[A comparable](g *Graph[A]) *Graph[A] { return WithKind(g, Undirected) }
