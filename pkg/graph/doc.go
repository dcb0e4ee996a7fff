// Package graph implements an algebraic property graph: a persistent,
// immutable graph value built from four composable primitives following
// Mokhov's algebra of graphs.
//
// # The algebra
//
// Every graph is one of four shapes:
//
//   - Empty: no vertices, no edges
//   - Vertex(v): a single vertex
//   - Overlay(l, r): the union of both operands' vertices and edges
//   - Connect(l, r): Overlay(l, r) plus every ordered edge from a vertex of
//     l to a vertex of r
//
// Derived constructors (Edge, Path, Clique, Star, FromVertices) are defined
// purely in terms of the primitives. All constructors only build the
// expression tree; no canonicalization happens until a query forces it.
//
// The algebra satisfies the usual laws: Overlay is a commutative monoid with
// Empty as identity, Connect is associative with Empty as identity, and
// Connect distributes over Overlay on both sides. These laws are not special
// cased anywhere - they fall out of the set-union/cross-product definition
// of canonicalization, and the test suite checks them as properties.
//
// # Equality
//
// Graph equality is extensional: two expression trees are equal exactly when
// they canonicalize to the same relation (vertex set plus edge set). Shape is
// never observable through Equal, Hash, IsSubgraphOf, or iteration; use Fold
// when tree shape matters.
//
// # Kinds
//
// Each graph carries a kind tag (directed, undirected, reflexive,
// transitive; default directed). Canonicalization applies the matching
// closure from package relation. Combining graphs of different kinds
// resolves via a join rule where undirected wins; comparing graphs of
// different kinds is a KIND_MISMATCH error.
//
// # Concurrency
//
// Graph values are immutable and freely shareable across goroutines. The
// only internal mutation is a write-once memo of the canonical relation,
// stored through an atomic pointer; concurrent first canonicalizations may
// compute the relation more than once, but all computed values are equal and
// the first store wins.
package graph
