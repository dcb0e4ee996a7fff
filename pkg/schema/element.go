package schema

// ElementKind discriminates the two cases of the Element union.
type ElementKind string

const (
	// ElementVertex marks an element wrapping a vertex value.
	ElementVertex ElementKind = "vertex"
	// ElementEdge marks an element wrapping an edge value.
	ElementEdge ElementKind = "edge"
)

// Vertex is a typed vertex: a registered label plus a value conforming to
// the label's schema. Equality is component-wise.
type Vertex struct {
	Label string `json:"label"`
	Value Value  `json:"value,omitempty"`
}

// Edge is a typed edge: a registered label, the vertex labels it may
// connect, and a value conforming to the label's schema. Equality is
// component-wise.
type Edge struct {
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
	Value Value  `json:"value,omitempty"`
}

// Element is the discriminated union of Vertex and Edge. Elements are the
// vertex type of a typed property graph: edge elements are reified into the
// algebra as intermediate vertices on the path between their endpoints.
//
// Element is comparable, so it can serve as the element type of
// graph.Graph; equality is component-wise over kind, label, endpoints, and
// canonical value.
type Element struct {
	Kind  ElementKind `json:"kind"`
	Label string      `json:"label"`
	From  string      `json:"from,omitempty"`
	To    string      `json:"to,omitempty"`
	Value Value       `json:"value,omitempty"`
}

// Element converts the vertex to its union representation.
func (v Vertex) Element() Element {
	return Element{Kind: ElementVertex, Label: v.Label, Value: v.Value}
}

// Element converts the edge to its union representation.
func (e Edge) Element() Element {
	return Element{Kind: ElementEdge, Label: e.Label, From: e.From, To: e.To, Value: e.Value}
}

// AsVertex returns the vertex case of the union, if this element is one.
func (el Element) AsVertex() (Vertex, bool) {
	if el.Kind != ElementVertex {
		return Vertex{}, false
	}
	return Vertex{Label: el.Label, Value: el.Value}, true
}

// AsEdge returns the edge case of the union, if this element is one.
func (el Element) AsEdge() (Edge, bool) {
	if el.Kind != ElementEdge {
		return Edge{}, false
	}
	return Edge{Label: el.Label, From: el.From, To: el.To, Value: el.Value}, true
}
