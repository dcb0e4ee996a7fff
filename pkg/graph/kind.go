package graph

import "github.com/relgraph/relgraph/pkg/errors"

// Kind selects the closure semantics applied to a graph's canonical
// relation. The zero value is Directed.
//
// Kinds are ordered by join precedence: combining two graphs with Overlay or
// Connect yields the higher-precedence kind, so Undirected wins over every
// other kind and Directed (the default) loses to every other kind. The rule
// is total and commutative, which keeps the constructors total as well.
type Kind uint8

const (
	// Directed applies no closure; the relation is used as-is.
	Directed Kind = iota
	// Transitive applies the transitive closure on canonicalization.
	Transitive
	// Reflexive applies the reflexive closure on canonicalization.
	Reflexive
	// Undirected applies the symmetric closure on canonicalization.
	Undirected
)

// kindNames maps kinds to their serialized names.
var kindNames = map[Kind]string{
	Directed:   "directed",
	Undirected: "undirected",
	Reflexive:  "reflexive",
	Transitive: "transitive",
}

// String returns the serialized name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "directed"
}

// ParseKind converts a serialized kind name to a Kind.
// Returns an INVALID_KIND error for unrecognized names.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return Directed, errors.New(errors.ErrCodeInvalidKind, "unknown graph kind: %q", s)
}

// joinKind resolves the kind of a combined graph. Higher precedence wins;
// see the Kind documentation for the rationale.
func joinKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}
