// Package graphio serializes algebraic graphs for debugging and
// interchange.
//
// The JSON format is the tagged expression tree:
//
//	{"kind":"directed","graph":{"_tag":"Connect",
//	  "left":{"_tag":"Vertex","value":"a"},
//	  "right":{"_tag":"Vertex","value":"b"}}}
//
// and a canonical relation renders as
//
//	{"vertices":["a","b"],"edges":[["a","b"]]}
//
// with both lists sorted for diffable output. The tree encoding preserves
// shape, so import → export round-trips the expression exactly; the
// relation encoding is shape-free and exists for inspection and for
// content-addressed cache keys.
//
// A msgpack codec with the same tree shape is provided for compact storage;
// vertex values travel as their canonical JSON bytes inside the msgpack
// envelope, so both codecs agree on value equality.
package graphio
