// Package render converts canonical graph relations to Graphviz DOT and
// rasterizes them to SVG or PNG.
//
// Rendering always goes through the canonical relation, never the
// expression tree: two extensionally equal graphs produce byte-identical
// DOT regardless of how they were built. Undirected graphs render as a DOT
// graph with undirected (--) edges, emitting each symmetric pair once; all
// other kinds render as a digraph.
//
// Rasterization uses the pure-Go Graphviz port, so no system Graphviz
// installation is required.
package render
