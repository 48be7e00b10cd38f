package model

import (
	"errors"
	"strings"
)

// ModelRef errors.
var (
	// ErrEmptyModelRef is returned when the reference is empty.
	ErrEmptyModelRef = errors.New("model reference cannot be empty")
	// ErrInvalidModelRef is returned when the reference contains characters
	// the catalog never uses in identifiers.
	ErrInvalidModelRef = errors.New("invalid model reference format")
)

// ModelRef is an immutable value object for a user-supplied "model[:tag]"
// reference. It separates the base model name from the optional tag so
// that existence checks run against the base name while installed-state
// checks run against the full reference.
type ModelRef struct {
	name string // Base model name, never empty
	tag  string // Tag portion, may be empty when the user omitted it
}

// NewModelRef parses a "model[:tag]" string into a ModelRef.
// The input is lowercased and trimmed; the catalog treats identifiers
// case-insensitively and always publishes them in lowercase.
func NewModelRef(ref string) (ModelRef, error) {
	normalized := strings.ToLower(strings.TrimSpace(ref))
	if normalized == "" {
		return ModelRef{}, ErrEmptyModelRef
	}

	// A trailing colon with no tag ("llama3:") collapses to the bare name.
	name, tag, _ := strings.Cut(normalized, ":")
	if name == "" {
		return ModelRef{}, ErrInvalidModelRef
	}

	if !isValidRefToken(name) || (tag != "" && !isValidRefToken(tag)) {
		return ModelRef{}, ErrInvalidModelRef
	}

	return ModelRef{name: name, tag: tag}, nil
}

// MustNewModelRef parses a reference or panics if invalid.
// Use only for known-valid references in tests or initialization.
func MustNewModelRef(ref string) ModelRef {
	mr, err := NewModelRef(ref)
	if err != nil {
		panic(err)
	}
	return mr
}

// isValidRefToken checks that a name or tag uses only catalog identifier
// characters (alphanumeric plus "._-").
func isValidRefToken(s string) bool {
	for _, c := range s {
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if !isLower && !isDigit && c != '.' && c != '_' && c != '-' {
			return false
		}
	}
	return true
}

// Name returns the base model name without any tag.
func (m ModelRef) Name() string {
	return m.name
}

// Tag returns the tag portion, or the empty string when the user
// supplied only a base name.
func (m ModelRef) Tag() string {
	return m.tag
}

// HasTag reports whether the reference included an explicit tag.
func (m ModelRef) HasTag() bool {
	return m.tag != ""
}

// String returns the reference as the user supplied it, normalized.
func (m ModelRef) String() string {
	if m.tag == "" {
		return m.name
	}
	return m.name + ":" + m.tag
}

// Normalized returns the full "name:tag" reference, filling in DefaultTag
// when no tag was supplied. The model manager stores installed models
// under their full reference, so matching must use this form.
func (m ModelRef) Normalized() string {
	if m.tag == "" {
		return m.name + ":" + DefaultTag
	}
	return m.name + ":" + m.tag
}

// IsZero reports whether this is a zero value (empty) ModelRef.
func (m ModelRef) IsZero() bool {
	return m.name == ""
}

// Equals reports whether two references resolve to the same model variant.
func (m ModelRef) Equals(other ModelRef) bool {
	return m.Normalized() == other.Normalized()
}
