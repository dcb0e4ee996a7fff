package schema

import (
	"encoding/json"

	"github.com/relgraph/relgraph/pkg/errors"
)

// Value is an immutable JSON value in canonical encoding. Two Values are
// equal (with ==) exactly when they encode structurally equal JSON
// documents: object keys are sorted and whitespace is normalized, so the
// encoding is a faithful equality witness.
//
// The zero Value encodes JSON null.
type Value struct {
	raw string
}

// NewValue canonicalizes v into a Value. Any JSON-marshalable Go value is
// accepted; the value is round-tripped through encoding/json so that maps
// and structs with equal content produce identical encodings.
func NewValue(v any) (Value, error) {
	first, err := json.Marshal(v)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidValue, err, "value is not JSON-encodable")
	}
	// Round-trip through any: struct field order collapses to sorted map
	// keys, making the encoding independent of the Go source type.
	var decoded any
	if err := json.Unmarshal(first, &decoded); err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidValue, err, "value round-trip failed")
	}
	canonical, err := json.Marshal(decoded)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInvalidValue, err, "value round-trip failed")
	}
	if string(canonical) == "null" {
		// Normalize to the zero Value so null compares equal to it.
		return Value{}, nil
	}
	return Value{raw: string(canonical)}, nil
}

// MustValue is NewValue, panicking on error. Intended for literals in tests
// and examples.
func MustValue(v any) Value {
	val, err := NewValue(v)
	if err != nil {
		panic(err)
	}
	return val
}

// IsZero reports whether the Value is the zero value (encodes null).
func (v Value) IsZero() bool { return v.raw == "" }

// String returns the canonical JSON encoding.
func (v Value) String() string {
	if v.raw == "" {
		return "null"
	}
	return v.raw
}

// Decode unmarshals the value into out.
func (v Value) Decode(out any) error {
	if err := json.Unmarshal([]byte(v.String()), out); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidValue, err, "cannot decode value")
	}
	return nil
}

// Any returns the value decoded into the generic JSON representation
// (map[string]any, []any, string, float64, bool, or nil).
func (v Value) Any() (any, error) {
	var out any
	if err := v.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalJSON emits the canonical encoding verbatim.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalJSON re-canonicalizes the incoming document.
func (v *Value) UnmarshalJSON(data []byte) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid JSON value")
	}
	val, err := NewValue(decoded)
	if err != nil {
		return err
	}
	*v = val
	return nil
}
