package graph

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomGraph builds an arbitrary expression tree over a small vertex
// alphabet. Small alphabets force overlaps, which is where the algebraic
// laws actually get exercised.
func randomGraph(rng *rand.Rand, depth int) *Graph[string] {
	alphabet := []string{"a", "b", "c", "d"}
	if depth == 0 {
		if rng.Intn(4) == 0 {
			return Empty[string]()
		}
		return Vertex(alphabet[rng.Intn(len(alphabet))])
	}
	switch rng.Intn(4) {
	case 0:
		return Empty[string]()
	case 1:
		return Vertex(alphabet[rng.Intn(len(alphabet))])
	case 2:
		return Overlay(randomGraph(rng, depth-1), randomGraph(rng, depth-1))
	default:
		return Connect(randomGraph(rng, depth-1), randomGraph(rng, depth-1))
	}
}

func assertGraphEqual(t *testing.T, want, got *Graph[string], msg string) {
	t.Helper()
	eq, err := Equal(want, got)
	require.NoError(t, err, msg)
	assert.True(t, eq, msg)
}

const lawTrials = 200

func forEachTriple(t *testing.T, check func(t *testing.T, x, y, z *Graph[string])) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < lawTrials; i++ {
		x := randomGraph(rng, 3)
		y := randomGraph(rng, 3)
		z := randomGraph(rng, 3)
		check(t, x, y, z)
		if t.Failed() {
			t.Logf("trial %d: x=%d/%d y=%d/%d z=%d/%d vertices/edges",
				i, x.Order(), x.Size(), y.Order(), y.Size(), z.Order(), z.Size())
			return
		}
	}
}

func TestOverlayCommutative(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, _ *Graph[string]) {
		assertGraphEqual(t, Overlay(x, y), Overlay(y, x), "x+y = y+x")
	})
}

func TestOverlayAssociative(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, z *Graph[string]) {
		assertGraphEqual(t, Overlay(Overlay(x, y), z), Overlay(x, Overlay(y, z)), "(x+y)+z = x+(y+z)")
	})
}

func TestOverlayIdempotent(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, _, _ *Graph[string]) {
		assertGraphEqual(t, x, Overlay(x, x), "x+x = x")
	})
}

func TestConnectAssociative(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, z *Graph[string]) {
		assertGraphEqual(t, Connect(Connect(x, y), z), Connect(x, Connect(y, z)), "(x*y)*z = x*(y*z)")
	})
}

func TestIdentities(t *testing.T) {
	e := Empty[string]()
	forEachTriple(t, func(t *testing.T, x, _, _ *Graph[string]) {
		assertGraphEqual(t, x, Overlay(x, e), "x+empty = x")
		assertGraphEqual(t, x, Overlay(e, x), "empty+x = x")
		assertGraphEqual(t, x, Connect(x, e), "x*empty = x")
		assertGraphEqual(t, x, Connect(e, x), "empty*x = x")
	})
}

func TestConnectDistributesOverOverlay(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, z *Graph[string]) {
		assertGraphEqual(t,
			Connect(x, Overlay(y, z)),
			Overlay(Connect(x, y), Connect(x, z)),
			"x*(y+z) = x*y + x*z")
		assertGraphEqual(t,
			Connect(Overlay(x, y), z),
			Overlay(Connect(x, z), Connect(y, z)),
			"(x+y)*z = x*z + y*z")
	})
}

func TestDecomposition(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, z *Graph[string]) {
		assertGraphEqual(t,
			Connect(Connect(x, y), z),
			Overlay(Overlay(Connect(x, y), Connect(x, z)), Connect(y, z)),
			"x*y*z = x*y + x*z + y*z")
	})
}

func TestEqualIsAnEquivalence(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, z *Graph[string]) {
		// Reflexivity on a structurally distinct copy.
		assertGraphEqual(t, x, Overlay(x, Empty[string]()), "reflexive")

		xy, err := Equal(x, y)
		require.NoError(t, err)
		yx, err := Equal(y, x)
		require.NoError(t, err)
		assert.Equal(t, xy, yx, "symmetric")

		yz, err := Equal(y, z)
		require.NoError(t, err)
		if xy && yz {
			xz, err := Equal(x, z)
			require.NoError(t, err)
			assert.True(t, xz, "transitive")
		}
	})
}

func TestHashConsistentWithEqual(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, _ *Graph[string]) {
		eq, err := Equal(x, y)
		require.NoError(t, err)
		if eq {
			assert.Equal(t, x.Hash(), y.Hash(), "equal graphs must hash equal")
		}
	})
}

func TestSubgraphLaws(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, _ *Graph[string]) {
		sub, err := IsSubgraphOf(x, Overlay(x, y))
		require.NoError(t, err)
		assert.True(t, sub, "x ⊆ x+y")

		sub, err = IsSubgraphOf(x, Connect(x, y))
		require.NoError(t, err)
		assert.True(t, sub, "x ⊆ x*y")

		sub, err = IsSubgraphOf(Overlay(x, y), Connect(x, y))
		require.NoError(t, err)
		assert.True(t, sub, "x+y ⊆ x*y")

		sub, err = IsSubgraphOf(Empty[string](), x)
		require.NoError(t, err)
		assert.True(t, sub, "empty ⊆ x")
	})
}

func TestSubgraphAntisymmetry(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, y, _ *Graph[string]) {
		ab, err := IsSubgraphOf(x, y)
		require.NoError(t, err)
		ba, err := IsSubgraphOf(y, x)
		require.NoError(t, err)
		if ab && ba {
			assertGraphEqual(t, x, y, "mutual subgraphs must be equal")
		}
	})
}

func TestTransposeInvolution(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, _, _ *Graph[string]) {
		assertGraphEqual(t, x, Transpose(Transpose(x)), "transpose is an involution")
	})
}

func TestTransposeReversesEdges(t *testing.T) {
	forEachTriple(t, func(t *testing.T, x, _, _ *Graph[string]) {
		tr := Transpose(x).Relation()
		orig := x.Relation()
		require.Equal(t, orig.Order(), tr.Order())
		require.Equal(t, orig.Size(), tr.Size())
		for e := range orig.Edges() {
			assert.True(t, tr.ContainsEdge(e.To, e.From),
				fmt.Sprintf("edge (%s,%s) must appear reversed", e.From, e.To))
		}
	})
}
