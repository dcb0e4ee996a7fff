package errors

import (
	"strings"
	"unicode"
)

// ValidateLabel validates a vertex or edge type label for the schema builder.
// Labels name entries in the discriminated unions produced by Build, so they
// must be non-empty, printable, and free of characters that would be unsafe
// in serialized output or DOT identifiers.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters or null bytes
//   - No leading/trailing whitespace
//   - Maximum length of 128 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(label) > 128 {
		return New(ErrCodeInvalidLabel, "label too long (max 128 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}

	if strings.TrimSpace(label) != label {
		return New(ErrCodeInvalidLabel, "label cannot have leading or trailing whitespace: %q", label)
	}

	return nil
}

// ValidateOutputPath validates a file path supplied to the CLI for safety.
// It prevents null bytes and unreasonably long paths.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
