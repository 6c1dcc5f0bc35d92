package core

import "strings"

// MaxNameLength bounds a hero name in runes.
const MaxNameLength = 64

// Hero is the domain model for a hero record.
type Hero struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NormalizeName trims surrounding whitespace from a hero name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName reports whether a trimmed name can be stored.
func ValidateName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return coreError(ErrCodeBadRequest, "name is required")
	}
	if len([]rune(name)) > MaxNameLength {
		return coreError(ErrCodeBadRequest, "name is too long")
	}
	return nil
}

// DefaultRoster is the starter set of heroes seeded into an empty store.
func DefaultRoster() []Hero {
	return []Hero{
		{ID: 12, Name: "Dr. Nice"},
		{ID: 13, Name: "Bombasto"},
		{ID: 14, Name: "Celeritas"},
		{ID: 15, Name: "Magneta"},
		{ID: 16, Name: "RubberMan"},
		{ID: 17, Name: "Dynama"},
		{ID: 18, Name: "Dr. IQ"},
		{ID: 19, Name: "Magma"},
		{ID: 20, Name: "Tornado"},
	}
}
