// Package schema provides the typed layer over the graph algebra: callers
// register named vertex and edge types with JSON Schema value constraints
// and endpoint labels, and compile them into validating constructors for a
// heterogeneous property graph.
//
// # Builder
//
// The Builder is a persistent value: AddVertex and AddEdge return a new
// builder carrying the updated registry and never mutate the receiver, so a
// partially registered builder is never observable. Duplicate labels fail at
// registration time; an edge may reference vertex labels registered later,
// and Build fails if any endpoint label is never registered.
//
// # Compiled schema
//
// Build resolves every registered JSON Schema and returns a Schema exposing:
//
//   - discriminated-union validators for vertices, edges, and whole graphs
//   - one constructor per label that validates a raw value against the
//     label's schema and wraps it as a Vertex or Edge
//   - graph constructors typed to Element, including ConnectVia, which
//     enforces an edge type's endpoint constraints dynamically
//
// # Values
//
// Element values are held as canonical JSON text (Value), which makes
// elements comparable: structural equality of two elements is equality of
// their labels, endpoints, and canonical value encoding. This is what lets
// heterogeneous elements live in the algebra's canonical vertex and edge
// sets.
package schema
