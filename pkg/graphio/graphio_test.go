package graphio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/graph"
)

func sample() *graph.Graph[string] {
	return graph.Connect(
		graph.Overlay(graph.Vertex("a"), graph.Vertex("b")),
		graph.Overlay(graph.Vertex("c"), graph.Empty[string]()),
	)
}

func TestJSONRoundTrip(t *testing.T) {
	g := sample()

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal[string](data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	eq, err := graph.Equal(g, back)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Error("round trip must preserve the graph")
	}
	if back.Kind() != g.Kind() {
		t.Error("round trip must preserve the kind")
	}
}

func TestRoundTripPreservesShape(t *testing.T) {
	// Overlay(v(a), v(a)) and Vertex(a) are extensionally equal but the
	// serialization works on trees, so the shapes must survive.
	g := graph.Overlay(graph.Vertex("a"), graph.Vertex("a"))

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	doc, err := toDocument(g)
	if err != nil {
		t.Fatalf("toDocument: %v", err)
	}
	if got, want := doc.Graph.count(), 3; got != want {
		t.Errorf("serialized %d nodes, want %d", got, want)
	}

	back, err := Unmarshal[string](data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	rdoc, err := toDocument(back)
	if err != nil {
		t.Fatalf("toDocument: %v", err)
	}
	if got, want := rdoc.Graph.count(), 3; got != want {
		t.Errorf("round trip changed the tree: %d nodes, want %d", got, want)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range []graph.Kind{graph.Directed, graph.Undirected, graph.Reflexive, graph.Transitive} {
		t.Run(kind.String(), func(t *testing.T) {
			g := graph.WithKind(graph.Edge("a", "b"), kind)
			data, err := Marshal(g)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			back, err := Unmarshal[string](data)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back.Kind() != kind {
				t.Errorf("Kind() = %s, want %s", back.Kind(), kind)
			}
		})
	}
}

func TestUnmarshalMissingKindDefaultsDirected(t *testing.T) {
	g, err := Unmarshal[string]([]byte(`{"graph": {"_tag": "Vertex", "value": "a"}}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if g.Kind() != graph.Directed {
		t.Errorf("Kind() = %s, want directed", g.Kind())
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"NotJSON", `{`, errors.ErrCodeInvalidFormat},
		{"NoGraph", `{"kind": "directed"}`, errors.ErrCodeInvalidFormat},
		{"BadKind", `{"kind": "sideways", "graph": {"_tag": "Empty"}}`, errors.ErrCodeInvalidKind},
		{"BadTag", `{"graph": {"_tag": "Nope"}}`, errors.ErrCodeInvalidFormat},
		{"MissingOperand", `{"graph": {"_tag": "Overlay", "left": {"_tag": "Empty"}}}`, errors.ErrCodeInvalidFormat},
		{"BadVertexValue", `{"graph": {"_tag": "Vertex", "value": [1]}}`, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal[string]([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	g := sample()

	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	back, err := Read[string](&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	eq, err := graph.Equal(g, back)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Error("Write/Read must preserve the graph")
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile[string](filepath.Join(t.TempDir(), "missing.json"))
	if got := errors.GetCode(err); got != errors.ErrCodeFileNotFound {
		t.Errorf("GetCode() = %s, want %s", got, errors.ErrCodeFileNotFound)
	}
}

func TestWriteFileReadFile(t *testing.T) {
	g := graph.AsUndirected(graph.Edge("a", "b"))
	path := filepath.Join(t.TempDir(), "g.json")

	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Stat: %v", err)
	}
	back, err := ReadFile[string](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if back.Kind() != graph.Undirected {
		t.Errorf("Kind() = %s, want undirected", back.Kind())
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	g := graph.WithKind(sample(), graph.Transitive)

	data, err := MarshalBinary(g)
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	back, err := UnmarshalBinary[string](data)
	if err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	eq, err := graph.Equal(g, back)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Error("binary round trip must preserve the graph")
	}
	if back.Kind() != graph.Transitive {
		t.Errorf("Kind() = %s, want transitive", back.Kind())
	}

	if _, err := UnmarshalBinary[string]([]byte("not msgpack")); err == nil {
		t.Error("garbage input must fail")
	}
}

func TestMarshalRelationDeterministic(t *testing.T) {
	// Same relation reached through differently-shaped expressions.
	g1 := graph.Overlay(graph.Edge("b", "c"), graph.Edge("a", "b"))
	g2 := graph.Overlay(graph.Edge("a", "b"), graph.Edge("b", "c"))

	d1, err := MarshalRelation(g1.Relation())
	if err != nil {
		t.Fatalf("MarshalRelation: %v", err)
	}
	d2, err := MarshalRelation(g2.Relation())
	if err != nil {
		t.Fatalf("MarshalRelation: %v", err)
	}
	if !bytes.Equal(d1, d2) {
		t.Error("equal relations must serialize identically")
	}

	s := string(d1)
	if !strings.Contains(s, `"vertices"`) || !strings.Contains(s, `"edges"`) {
		t.Errorf("unexpected document shape: %s", s)
	}
	// Sorted by encoded form.
	if strings.Index(s, `"a"`) > strings.Index(s, `"b"`) {
		t.Error("vertices must be sorted")
	}
}

func TestMarshalRelationEmpty(t *testing.T) {
	data, err := MarshalRelation(graph.Empty[string]().Relation())
	if err != nil {
		t.Fatalf("MarshalRelation: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"vertices": []`) || !strings.Contains(s, `"edges": []`) {
		t.Errorf("empty relation must serialize with empty arrays, got %s", s)
	}
}
