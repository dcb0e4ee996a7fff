// Package relation implements the canonical form of an algebraic graph:
// an immutable pair of a vertex set and an ordered-pair edge set.
//
// A Relation is the normal form every graph expression reduces to. It is the
// only structure graph equality, hashing, containment, and iteration ever
// consult; two differently shaped expression trees denote the same graph
// exactly when their relations are equal.
//
// # Equivalence
//
// Set membership is decided by an injectable Equivalence: a pair of an
// equality predicate and a companion hash. The default, Structural, uses the
// language's == on comparable values with a seeded runtime hash. Callers can
// supply a coarser equivalence (for example, compare records by a single key
// field) to canonicalize graphs under their own notion of vertex identity.
//
// # Closures
//
// Symmetric, Reflexive, and Transitive produce the set-completion of a
// relation. Each is pure (the receiver is never modified) and idempotent:
// applying a closure twice yields the same relation as applying it once.
//
// # Complexity
//
// Membership and insertion are amortized O(1) via hash buckets. Union is
// linear in the size of the smaller-plus-larger operands. Transitive runs a
// Warshall pass, O(V³) in the vertex count, which is the expected cost for
// the in-memory scale this engine targets.
package relation
