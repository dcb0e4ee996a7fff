package relation

// Symmetric returns the symmetric closure: for every edge (u,v), the edge
// (v,u) is also present. Idempotent; the receiver is not modified.
func (r *Relation[A]) Symmetric() *Relation[A] {
	out := r.clone()
	for e := range r.Edges() {
		out.addEdge(e.To, e.From)
	}
	return out
}

// Reflexive returns the reflexive closure: for every vertex v, the self-loop
// (v,v) is present. Idempotent; the receiver is not modified.
func (r *Relation[A]) Reflexive() *Relation[A] {
	out := r.clone()
	for v := range r.Vertices() {
		out.addEdge(v, v)
	}
	return out
}

// Transitive returns the transitive closure: whenever (u,v) and (v,w) are
// present, so is (u,w). Idempotent; the receiver is not modified.
//
// The closure runs a Warshall pass over a dense reachability matrix, O(V³)
// time and O(V²) space in the vertex count. Callers with pathologically
// large graphs should expect this to dominate canonicalization cost.
func (r *Relation[A]) Transitive() *Relation[A] {
	verts := r.VertexSlice()
	n := len(verts)
	if n == 0 || r.size == 0 {
		return r.clone()
	}

	// Index vertices so edges become matrix coordinates.
	index := func(v A) int {
		h := r.eq.Hash(v)
		for i, m := range verts {
			if r.eq.Hash(m) == h && r.eq.Equal(m, v) {
				return i
			}
		}
		return -1
	}

	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
	}
	for e := range r.Edges() {
		i, j := index(e.From), index(e.To)
		if i >= 0 && j >= 0 {
			reach[i][j] = true
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}

	out := r.clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if reach[i][j] {
				out.addEdge(verts[i], verts[j])
			}
		}
	}
	return out
}
