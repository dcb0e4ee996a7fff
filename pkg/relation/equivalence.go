package relation

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Equivalence decides membership in a Relation's vertex and edge sets.
// Equal reports whether two values are the same element; Hash must be
// consistent with Equal (equal values hash equal). The zero value is not
// usable - both fields must be set.
type Equivalence[A any] struct {
	// Equal reports whether a and b denote the same vertex.
	Equal func(a, b A) bool

	// Hash returns a bucket hash for v. Values equal under Equal must
	// return the same hash; unequal values should usually differ.
	Hash func(v A) uint64
}

// structuralSeed is the process-wide seed for structural hashing.
// A shared seed keeps hashes comparable across all relations in a process.
var structuralSeed = maphash.MakeSeed()

// Structural returns the default equivalence: == on comparable values with
// the runtime's seeded hash. This is the equivalence used by graph equality
// unless a caller injects another one.
func Structural[A comparable]() Equivalence[A] {
	return Equivalence[A]{
		Equal: func(a, b A) bool { return a == b },
		Hash:  func(v A) uint64 { return maphash.Comparable(structuralSeed, v) },
	}
}

// pairHash combines two element hashes into an order-dependent edge hash.
// (a,b) and (b,a) must hash differently, so the endpoints are fed to the
// digest in order rather than mixed commutatively.
func pairHash(from, to uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], from)
	binary.LittleEndian.PutUint64(buf[8:], to)
	return xxhash.Sum64(buf[:])
}

// setHash combines the per-element sums of the vertex and edge sets into a
// single order-independent relation hash.
func setHash(vertexSum, edgeSum uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], vertexSum)
	binary.LittleEndian.PutUint64(buf[8:], edgeSum)
	return xxhash.Sum64(buf[:])
}
