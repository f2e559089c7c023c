package theme

import (
	"errors"
	"fmt"
)

// Preference is the persisted theme choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// DefaultPreference is used whenever no valid preference is stored or shown.
const DefaultPreference = Light

const (
	// StorageKey is the store key the preference lives under.
	StorageKey = "theme"
	// Attribute is the presentation attribute set on the document root.
	Attribute = "data-theme"
)

// ErrInvalidPreference is returned when a value is not light or dark.
var ErrInvalidPreference = errors.New("invalid theme preference")

// Parse validates a raw preference value. Only the exact values light and
// dark are accepted.
func Parse(s string) (Preference, error) {
	p := Preference(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
	}
	return p, nil
}

// Valid reports whether p is light or dark.
func (p Preference) Valid() bool {
	return p == Light || p == Dark
}

// Toggled returns the complement of p. Only light flips to dark; any
// other value, valid or not, flips to light.
func (p Preference) Toggled() Preference {
	if p == Light {
		return Dark
	}
	return Light
}

func (p Preference) String() string {
	return string(p)
}

// orDefault maps a raw value onto the closed set, falling back to light.
func orDefault(raw string, ok bool) Preference {
	if !ok {
		return DefaultPreference
	}
	p, err := Parse(raw)
	if err != nil {
		return DefaultPreference
	}
	return p
}
