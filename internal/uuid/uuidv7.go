// Package uuid generates and validates the string identifiers used as
// primary keys throughout fintrack.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a new time-ordered UUIDv7 string.
// UUIDv7 keeps inserts roughly sequential in B-tree indexes, which makes it
// a better primary key than random v4 values. If the system random source
// fails, a v4 value is returned instead.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid reports whether s is a valid UUID of any version.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}

// Version returns the version nibble of s, or 0 if s is not a valid UUID.
func Version(s string) int {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(parsed.Version())
}
