package schema

import (
	"maps"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/relgraph/relgraph/pkg/errors"
)

// edgeType records a registered edge type before compilation.
type edgeType struct {
	schema *jsonschema.Schema
	from   string
	to     string
}

// Builder accumulates vertex and edge type registrations. It is a
// persistent value: AddVertex and AddEdge return a new builder and never
// mutate the receiver, so builder values can be shared and branched freely.
// Use NewBuilder; the zero value is usable but NewBuilder reads better.
type Builder struct {
	vertices map[string]*jsonschema.Schema
	edges    map[string]edgeType
}

// NewBuilder returns a builder with no registered types.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddVertex registers a vertex type under label with a JSON Schema for its
// values. Returns a new builder; the receiver is unchanged. Fails with
// DUPLICATE_LABEL if the label is already registered as a vertex or edge
// type, or INVALID_LABEL for malformed labels.
//
// Each call copies the registry, so a registration sequence of n types costs
// O(n²) total - negligible at schema scale.
func (b *Builder) AddVertex(label string, s *jsonschema.Schema) (*Builder, error) {
	if err := b.checkLabel(label); err != nil {
		return nil, err
	}
	out := b.copy()
	out.vertices[label] = s
	return out, nil
}

// AddEdge registers an edge type under label, constrained to connect a
// vertex of type from to a vertex of type to, with a JSON Schema for its
// values. Returns a new builder; the receiver is unchanged.
//
// The endpoint labels need not be registered yet - they are checked at
// Build, which fails if either is still missing.
func (b *Builder) AddEdge(label string, s *jsonschema.Schema, from, to string) (*Builder, error) {
	if err := b.checkLabel(label); err != nil {
		return nil, err
	}
	if err := errors.ValidateLabel(from); err != nil {
		return nil, err
	}
	if err := errors.ValidateLabel(to); err != nil {
		return nil, err
	}
	out := b.copy()
	out.edges[label] = edgeType{schema: s, from: from, to: to}
	return out, nil
}

// Build compiles the registry into a Schema: every registered JSON Schema
// is resolved, edge endpoint labels are checked against the vertex
// registry, and validating constructors are produced per label.
//
// Fails with UNKNOWN_LABEL if an edge references an unregistered vertex
// label, or INVALID_FORMAT if a registered schema does not resolve.
func (b *Builder) Build() (*Schema, error) {
	s := &Schema{
		vertices: make(map[string]*jsonschema.Resolved, len(b.vertices)),
		edges:    make(map[string]compiledEdge, len(b.edges)),
	}

	// Deterministic iteration keeps error messages stable across runs.
	for _, label := range slices.Sorted(maps.Keys(b.vertices)) {
		resolved, err := b.vertices[label].Resolve(nil)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err,
				"schema for vertex type %q does not resolve", label)
		}
		s.vertices[label] = resolved
	}

	for _, label := range slices.Sorted(maps.Keys(b.edges)) {
		et := b.edges[label]
		if _, ok := b.vertices[et.from]; !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"edge type %q references unregistered vertex label %q", label, et.from)
		}
		if _, ok := b.vertices[et.to]; !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"edge type %q references unregistered vertex label %q", label, et.to)
		}
		resolved, err := et.schema.Resolve(nil)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err,
				"schema for edge type %q does not resolve", label)
		}
		s.edges[label] = compiledEdge{schema: resolved, from: et.from, to: et.to}
	}

	return s, nil
}

// VertexLabels returns the registered vertex labels in sorted order.
func (b *Builder) VertexLabels() []string {
	return slices.Sorted(maps.Keys(b.vertices))
}

// EdgeLabels returns the registered edge labels in sorted order.
func (b *Builder) EdgeLabels() []string {
	return slices.Sorted(maps.Keys(b.edges))
}

// checkLabel rejects malformed and already-registered labels.
func (b *Builder) checkLabel(label string) error {
	if err := errors.ValidateLabel(label); err != nil {
		return err
	}
	if _, ok := b.vertices[label]; ok {
		return errors.New(errors.ErrCodeDuplicateLabel, "label already registered as vertex type: %q", label)
	}
	if _, ok := b.edges[label]; ok {
		return errors.New(errors.ErrCodeDuplicateLabel, "label already registered as edge type: %q", label)
	}
	return nil
}

// copy clones the registry maps for copy-on-write updates.
func (b *Builder) copy() *Builder {
	out := &Builder{
		vertices: make(map[string]*jsonschema.Schema, len(b.vertices)+1),
		edges:    make(map[string]edgeType, len(b.edges)+1),
	}
	maps.Copy(out.vertices, b.vertices)
	maps.Copy(out.edges, b.edges)
	return out
}
