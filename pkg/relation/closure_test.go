package relation

import "testing"

func mustRelation(edges [][2]string, extra ...string) *Relation[string] {
	b := NewBuilder(Structural[string]())
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	for _, v := range extra {
		b.AddVertex(v)
	}
	return b.Relation()
}

func TestSymmetric(t *testing.T) {
	r := mustRelation([][2]string{{"a", "b"}})
	s := r.Symmetric()

	if !s.ContainsEdge("a", "b") || !s.ContainsEdge("b", "a") {
		t.Error("symmetric closure must contain both orientations")
	}
	if got, want := s.Size(), 2; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if r.Size() != 1 {
		t.Error("closure mutated the receiver")
	}
}

func TestReflexive(t *testing.T) {
	r := mustRelation([][2]string{{"a", "b"}}, "c")
	s := r.Reflexive()

	for _, v := range []string{"a", "b", "c"} {
		if !s.ContainsEdge(v, v) {
			t.Errorf("reflexive closure missing self-loop (%s,%s)", v, v)
		}
	}
	if got, want := s.Size(), 4; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
}

func TestTransitive(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]string
		wantEdges [][2]string
		wantSize  int
	}{
		{
			name:      "Chain",
			edges:     [][2]string{{"a", "b"}, {"b", "c"}},
			wantEdges: [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
			wantSize:  3,
		},
		{
			name:      "LongerChain",
			edges:     [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}},
			wantEdges: [][2]string{{"a", "c"}, {"a", "d"}, {"b", "d"}},
			wantSize:  6,
		},
		{
			name:      "Cycle",
			edges:     [][2]string{{"a", "b"}, {"b", "a"}},
			wantEdges: [][2]string{{"a", "a"}, {"b", "b"}},
			wantSize:  4,
		},
		{
			name:     "NoEdges",
			edges:    nil,
			wantSize: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRelation(tt.edges)
			s := r.Transitive()

			for _, e := range tt.wantEdges {
				if !s.ContainsEdge(e[0], e[1]) {
					t.Errorf("missing edge (%s,%s)", e[0], e[1])
				}
			}
			if got := s.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
			if s.Order() != r.Order() {
				t.Error("transitive closure must not change the vertex set")
			}
		})
	}
}

func TestClosureIdempotence(t *testing.T) {
	r := mustRelation([][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, "d")

	closures := []struct {
		name  string
		apply func(*Relation[string]) *Relation[string]
	}{
		{"Symmetric", func(r *Relation[string]) *Relation[string] { return r.Symmetric() }},
		{"Reflexive", func(r *Relation[string]) *Relation[string] { return r.Reflexive() }},
		{"Transitive", func(r *Relation[string]) *Relation[string] { return r.Transitive() }},
	}

	for _, c := range closures {
		t.Run(c.name, func(t *testing.T) {
			once := c.apply(r)
			twice := c.apply(once)
			if !once.Equal(twice) {
				t.Errorf("%s closure is not idempotent", c.name)
			}
		})
	}
}
