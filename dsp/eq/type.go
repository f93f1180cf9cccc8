package eq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a filter type name or index is not defined.
var ErrUnknownType = errors.New("eq: unknown filter type")

// Type selects the filter shape of a band.
type Type int

// Filter types, in parameter-host index order.
const (
	TypeVolume Type = iota
	TypeLowPass
	TypeHighPass
	TypeBandPass
	TypeAllPass
	TypeNotch
	TypePeak
	TypeLowShelf
	TypeHighShelf
	TypeBypassed

	numTypes
)

var typeNames = [numTypes]string{
	"Volume",
	"Low Pass",
	"High Pass",
	"Band Pass",
	"AllPass",
	"Notch",
	"Peak",
	"Low Shelf",
	"High Shelf",
	"Bypassed",
}

// Types returns all filter types in index order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// TypeNames returns the display names of all filter types in index order.
func TypeNames() []string {
	out := make([]string, numTypes)
	copy(out, typeNames[:])
	return out
}

// String returns the display name, e.g. "Low Shelf".
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// TypeFromIndex returns the type with the given host index.
func TypeFromIndex(index int) (Type, error) {
	if index < 0 || index >= int(numTypes) {
		return 0, fmt.Errorf("%w: index %d", ErrUnknownType, index)
	}
	return Type(index), nil
}

// ParseType resolves a display name. Matching ignores case, spaces, dashes
// and underscores, so "Low Shelf", "lowshelf" and "low-shelf" are equal.
func ParseType(name string) (Type, error) {
	key := typeKey(name)
	for i, n := range typeNames {
		if typeKey(n) == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func typeKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// IsActive reports whether the band takes part in the audible result.
// Bypassed bands are excluded from cascaded responses and active counts.
func (t Type) IsActive() bool {
	return t != TypeBypassed
}

// HasFrequency reports whether the type consumes a frequency.
func (t Type) HasFrequency() bool {
	switch t {
	case TypeVolume, TypeBypassed:
		return false
	default:
		return true
	}
}

// HasGain reports whether the type consumes a gain.
func (t Type) HasGain() bool {
	switch t {
	case TypeVolume, TypePeak, TypeLowShelf, TypeHighShelf:
		return true
	default:
		return false
	}
}

// HasQ reports whether the type consumes a quality factor.
func (t Type) HasQ() bool {
	switch t {
	case TypeVolume, TypeBypassed:
		return false
	default:
		return true
	}
}
