package graphio

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/relation"
)

// relationDoc is the serialized shape of a canonical relation.
type relationDoc struct {
	Vertices []json.RawMessage   `json:"vertices"`
	Edges    [][]json.RawMessage `json:"edges"`
}

// MarshalRelation encodes a canonical relation as indented JSON:
// {"vertices":[...], "edges":[[from,to], ...]}.
//
// Output is deterministic: vertices and edges are sorted by their encoded
// form, so structurally equal relations always serialize identically. This
// is what makes the encoding usable as content-addressed cache key
// material.
func MarshalRelation[A any](r *relation.Relation[A]) ([]byte, error) {
	doc := relationDoc{
		Vertices: make([]json.RawMessage, 0, r.Order()),
		Edges:    make([][]json.RawMessage, 0, r.Size()),
	}

	for v := range r.Vertices() {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err, "vertex value is not JSON-encodable")
		}
		doc.Vertices = append(doc.Vertices, data)
	}
	slices.SortFunc(doc.Vertices, func(a, b json.RawMessage) int {
		return strings.Compare(string(a), string(b))
	})

	for e := range r.Edges() {
		from, err := json.Marshal(e.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err, "edge endpoint is not JSON-encodable")
		}
		to, err := json.Marshal(e.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err, "edge endpoint is not JSON-encodable")
		}
		doc.Edges = append(doc.Edges, []json.RawMessage{from, to})
	}
	slices.SortFunc(doc.Edges, func(a, b []json.RawMessage) int {
		if c := strings.Compare(string(a[0]), string(b[0])); c != 0 {
			return c
		}
		return strings.Compare(string(a[1]), string(b[1]))
	})

	return json.MarshalIndent(doc, "", "  ")
}
