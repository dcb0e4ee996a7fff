package graphio

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/graph"
)

// Tags of the serialized expression tree.
const (
	TagEmpty   = "Empty"
	TagVertex  = "Vertex"
	TagOverlay = "Overlay"
	TagConnect = "Connect"
)

// node is the serialized form of one expression tree node.
type node struct {
	Tag   string          `json:"_tag" msgpack:"t"`
	Value json.RawMessage `json:"value,omitempty" msgpack:"v,omitempty"`
	Left  *node           `json:"left,omitempty" msgpack:"l,omitempty"`
	Right *node           `json:"right,omitempty" msgpack:"r,omitempty"`
}

// document wraps a tree with its kind tag. A missing kind reads as
// directed, matching the algebra's default.
type document struct {
	Kind  string `json:"kind,omitempty" msgpack:"k,omitempty"`
	Graph *node  `json:"graph" msgpack:"g"`
}

// Marshal encodes the expression tree as indented JSON.
// Tree shape and kind are preserved exactly.
func Marshal[A comparable](g *graph.Graph[A]) ([]byte, error) {
	doc, err := toDocument(g)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a JSON expression tree produced by Marshal.
func Unmarshal[A comparable](data []byte) (*graph.Graph[A], error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}
	return fromDocument[A](doc)
}

// Write encodes g as JSON to w.
func Write[A comparable](g *graph.Graph[A], w io.Writer) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read decodes a JSON graph from r.
func Read[A comparable](r io.Reader) (*graph.Graph[A], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read graph")
	}
	return Unmarshal[A](data)
}

// WriteFile writes g as JSON to path. The file is created with 0644
// permissions.
func WriteFile[A comparable](g *graph.Graph[A], path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a JSON graph from path.
func ReadFile[A comparable](path string) (*graph.Graph[A], error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read[A](f)
}

// toDocument folds the expression tree into its serialized form.
func toDocument[A comparable](g *graph.Graph[A]) (document, error) {
	var encodeErr error
	tree := graph.Fold(g, graph.Folder[A, *node]{
		OnEmpty: func() *node { return &node{Tag: TagEmpty} },
		OnVertex: func(v A) *node {
			data, err := json.Marshal(v)
			if err != nil && encodeErr == nil {
				encodeErr = errors.Wrap(errors.ErrCodeInvalidValue, err, "vertex value is not JSON-encodable")
			}
			return &node{Tag: TagVertex, Value: data}
		},
		OnOverlay: func(l, r *node) *node { return &node{Tag: TagOverlay, Left: l, Right: r} },
		OnConnect: func(l, r *node) *node { return &node{Tag: TagConnect, Left: l, Right: r} },
	})
	if encodeErr != nil {
		return document{}, encodeErr
	}
	return document{Kind: g.Kind().String(), Graph: tree}, nil
}

// fromDocument rebuilds the expression tree, validating tags as it goes.
func fromDocument[A comparable](doc document) (*graph.Graph[A], error) {
	kind := graph.Directed
	if doc.Kind != "" {
		var err error
		if kind, err = graph.ParseKind(doc.Kind); err != nil {
			return nil, err
		}
	}
	if doc.Graph == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document has no graph")
	}
	g, err := fromNode[A](doc.Graph)
	if err != nil {
		return nil, err
	}
	return graph.WithKind(g, kind), nil
}

func fromNode[A comparable](n *node) (*graph.Graph[A], error) {
	switch n.Tag {
	case TagEmpty:
		return graph.Empty[A](), nil
	case TagVertex:
		var v A
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode vertex value %s", n.Value)
		}
		return graph.Vertex(v), nil
	case TagOverlay, TagConnect:
		if n.Left == nil || n.Right == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "%s node missing operand", n.Tag)
		}
		l, err := fromNode[A](n.Left)
		if err != nil {
			return nil, err
		}
		r, err := fromNode[A](n.Right)
		if err != nil {
			return nil, err
		}
		if n.Tag == TagOverlay {
			return graph.Overlay(l, r), nil
		}
		return graph.Connect(l, r), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown node tag: %q", n.Tag)
	}
}

// count reports the number of nodes in the serialized tree; tests use it to
// assert shape preservation.
func (n *node) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.count() + n.Right.count()
}
