package schema

import (
	"maps"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/graph"
)

// compiledEdge is a resolved edge type with its endpoint constraints.
type compiledEdge struct {
	schema *jsonschema.Resolved
	from   string
	to     string
}

// Schema is the compiled form of a Builder: discriminated-union validators
// for vertices, edges, and graphs, plus validating constructors per label.
// A Schema is immutable and safe for concurrent use.
type Schema struct {
	vertices map[string]*jsonschema.Resolved
	edges    map[string]compiledEdge
}

// Graph is the typed property graph produced by this package: an algebraic
// graph over the Element union.
type Graph = graph.Graph[Element]

// NewVertex validates raw against the schema registered for label and wraps
// it as a Vertex. Fails with UNKNOWN_LABEL for unregistered labels and
// INVALID_VALUE when the value does not conform.
func (s *Schema) NewVertex(label string, raw any) (Vertex, error) {
	resolved, ok := s.vertices[label]
	if !ok {
		return Vertex{}, errors.New(errors.ErrCodeUnknownLabel, "unknown vertex type: %q", label)
	}
	value, err := s.conform(resolved, label, raw)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{Label: label, Value: value}, nil
}

// NewEdge validates raw against the schema registered for label and wraps
// it as an Edge carrying the label's endpoint constraints. Fails with
// UNKNOWN_LABEL for unregistered labels and INVALID_VALUE when the value
// does not conform.
func (s *Schema) NewEdge(label string, raw any) (Edge, error) {
	ce, ok := s.edges[label]
	if !ok {
		return Edge{}, errors.New(errors.ErrCodeUnknownLabel, "unknown edge type: %q", label)
	}
	value, err := s.conform(ce.schema, label, raw)
	if err != nil {
		return Edge{}, err
	}
	return Edge{Label: label, From: ce.from, To: ce.to, Value: value}, nil
}

// ValidateVertex checks v against the vertex union: its label must be
// registered and its value must conform to that label's schema.
func (s *Schema) ValidateVertex(v Vertex) error {
	resolved, ok := s.vertices[v.Label]
	if !ok {
		return errors.New(errors.ErrCodeUnknownLabel, "unknown vertex type: %q", v.Label)
	}
	_, err := s.conform(resolved, v.Label, v.Value)
	return err
}

// ValidateEdge checks e against the edge union: its label must be
// registered, its endpoints must match the registered constraint, and its
// value must conform to that label's schema.
func (s *Schema) ValidateEdge(e Edge) error {
	ce, ok := s.edges[e.Label]
	if !ok {
		return errors.New(errors.ErrCodeUnknownLabel, "unknown edge type: %q", e.Label)
	}
	if e.From != ce.from || e.To != ce.to {
		return errors.New(errors.ErrCodeEndpointMismatch,
			"edge type %q connects %s→%s, not %s→%s", e.Label, ce.from, ce.to, e.From, e.To)
	}
	_, err := s.conform(ce.schema, e.Label, e.Value)
	return err
}

// ValidateElement checks one case of the union.
func (s *Schema) ValidateElement(el Element) error {
	if v, ok := el.AsVertex(); ok {
		return s.ValidateVertex(v)
	}
	if e, ok := el.AsEdge(); ok {
		return s.ValidateEdge(e)
	}
	return errors.New(errors.ErrCodeInvalidValue, "element has unknown kind: %q", el.Kind)
}

// ValidateGraph checks a whole typed graph against the schema:
//
//  1. Every element conforms to its union case.
//  2. Every canonical edge incident to an edge element respects the edge
//     type's endpoint constraints: the source of an edge element must be a
//     vertex of its from-type, the target a vertex of its to-type, and two
//     edge elements are never adjacent.
//
// Untyped vertex-to-vertex adjacency is permitted; the algebra allows it
// and the schema has nothing to say about it.
func (s *Schema) ValidateGraph(g *Graph) error {
	rel := g.Relation()

	for el := range rel.Vertices() {
		if err := s.ValidateElement(el); err != nil {
			return err
		}
	}

	for pair := range rel.Edges() {
		src, dst := pair.From, pair.To
		if srcEdge, ok := src.AsEdge(); ok {
			if _, ok := dst.AsEdge(); ok {
				return errors.New(errors.ErrCodeEndpointMismatch,
					"edge elements %q and %q are adjacent", src.Label, dst.Label)
			}
			if dst.Label != srcEdge.To {
				return errors.New(errors.ErrCodeEndpointMismatch,
					"edge type %q must target %q, found %q", src.Label, srcEdge.To, dst.Label)
			}
			continue
		}
		if dstEdge, ok := dst.AsEdge(); ok {
			if src.Label != dstEdge.From {
				return errors.New(errors.ErrCodeEndpointMismatch,
					"edge type %q must originate from %q, found %q", dst.Label, dstEdge.From, src.Label)
			}
		}
	}

	return nil
}

// Empty returns the empty typed graph.
func (s *Schema) Empty() *Graph { return graph.Empty[Element]() }

// VertexGraph lifts a typed vertex into a singleton graph.
func (s *Schema) VertexGraph(v Vertex) *Graph { return graph.Vertex(v.Element()) }

// Overlay combines two typed graphs without adding edges.
func (s *Schema) Overlay(a, b *Graph) *Graph { return graph.Overlay(a, b) }

// Connect combines two typed graphs, adding every edge from a vertex of a
// to a vertex of b. Prefer ConnectVia when the connection represents a
// typed edge; Connect performs no endpoint checking.
func (s *Schema) Connect(a, b *Graph) *Graph { return graph.Connect(a, b) }

// ConnectVia builds the typed connection from→e→to as a path, reifying the
// edge element between its endpoints. The endpoints are checked against the
// edge type's constraints: connecting a Company to a Person via an edge
// declared Person→Company fails with ENDPOINT_MISMATCH.
func (s *Schema) ConnectVia(e Edge, from, to Vertex) (*Graph, error) {
	if err := s.ValidateEdge(e); err != nil {
		return nil, err
	}
	if from.Label != e.From {
		return nil, errors.New(errors.ErrCodeEndpointMismatch,
			"edge type %q requires source %q, got %q", e.Label, e.From, from.Label)
	}
	if to.Label != e.To {
		return nil, errors.New(errors.ErrCodeEndpointMismatch,
			"edge type %q requires target %q, got %q", e.Label, e.To, to.Label)
	}
	return graph.Path([]Element{from.Element(), e.Element(), to.Element()}), nil
}

// VertexLabels returns the compiled vertex labels in sorted order.
func (s *Schema) VertexLabels() []string {
	return slices.Sorted(maps.Keys(s.vertices))
}

// EdgeLabels returns the compiled edge labels in sorted order.
func (s *Schema) EdgeLabels() []string {
	return slices.Sorted(maps.Keys(s.edges))
}

// conform validates raw against a resolved schema and canonicalizes it.
// raw may be a Value (revalidation) or any JSON-encodable Go value
// (construction); validation always runs on the decoded generic form.
func (s *Schema) conform(resolved *jsonschema.Resolved, label string, raw any) (Value, error) {
	value, ok := raw.(Value)
	if !ok {
		var err error
		if value, err = NewValue(raw); err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidValue, err,
				"value for %q is not encodable", label)
		}
	}
	decoded, err := value.Any()
	if err != nil {
		return Value{}, err
	}
	if err := resolved.Validate(decoded); err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidValue, err,
			"value does not conform to schema for %q", label)
	}
	return value, nil
}
