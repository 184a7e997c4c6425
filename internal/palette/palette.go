// Package palette is the registry of named color schemes and modes. It holds
// pure data: the closed enumerations, the seed hue tables every color family
// is derived from, and the canvas color of each mode.
package palette

import (
	"strings"

	"github.com/tungetti/hue/internal/errors"
)

// ColorScheme selects a base hue family.
type ColorScheme string

const (
	SchemeBlue   ColorScheme = "blue"
	SchemeGreen  ColorScheme = "green"
	SchemeOrange ColorScheme = "orange"
)

// DefaultScheme is used when no valid preference exists.
const DefaultScheme = SchemeBlue

// Schemes returns every color scheme in display order.
func Schemes() []ColorScheme {
	return []ColorScheme{SchemeBlue, SchemeGreen, SchemeOrange}
}

// Valid reports whether s is a member of the closed scheme set.
func (s ColorScheme) Valid() bool {
	switch s {
	case SchemeBlue, SchemeGreen, SchemeOrange:
		return true
	}
	return false
}

// Next returns the scheme following s, wrapping around.
func (s ColorScheme) Next() ColorScheme {
	all := Schemes()
	for i, c := range all {
		if c == s {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultScheme
}

func (s ColorScheme) String() string { return string(s) }

// ParseColorScheme parses a scheme name, ignoring case and surrounding space.
func ParseColorScheme(v string) (ColorScheme, error) {
	s := ColorScheme(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", errors.Newf(errors.Configuration, "unknown color scheme %q", v).
			WithOp("palette.ParseColorScheme")
	}
	return s, nil
}

// Mode is the light or dark rendering context.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// DefaultMode is used when no valid preference exists.
const DefaultMode = ModeLight

// Modes returns both modes.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// Valid reports whether m is light or dark.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// IsDark reports whether m is the dark mode.
func (m Mode) IsDark() bool { return m == ModeDark }

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

func (m Mode) String() string { return string(m) }

// ParseMode parses a mode name, ignoring case and surrounding space.
func ParseMode(v string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(v)))
	if !m.Valid() {
		return "", errors.Newf(errors.Configuration, "unknown mode %q", v).
			WithOp("palette.ParseMode")
	}
	return m, nil
}

// ColorFamily is a semantic color role.
type ColorFamily string

const (
	FamilyPrimary   ColorFamily = "primary"
	FamilySecondary ColorFamily = "secondary"
	FamilyTertiary  ColorFamily = "tertiary"
	FamilyAccent    ColorFamily = "accent"
	FamilySuccess   ColorFamily = "success"
	FamilyWarning   ColorFamily = "warning"
	FamilyDanger    ColorFamily = "danger"
	FamilyNeutral   ColorFamily = "neutral"
	// FamilyWhite is the literal escape: a fixed near-white/near-canvas table
	// that does not follow the scheme.
	FamilyWhite ColorFamily = "white"
)

// Families returns every color family in a fixed order.
func Families() []ColorFamily {
	return []ColorFamily{
		FamilyPrimary,
		FamilySecondary,
		FamilyTertiary,
		FamilyAccent,
		FamilySuccess,
		FamilyWarning,
		FamilyDanger,
		FamilyNeutral,
		FamilyWhite,
	}
}

// Valid reports whether f is a known family.
func (f ColorFamily) Valid() bool {
	for _, known := range Families() {
		if f == known {
			return true
		}
	}
	return false
}

func (f ColorFamily) String() string { return string(f) }

// ParseColorFamily parses a family name.
func ParseColorFamily(v string) (ColorFamily, error) {
	f := ColorFamily(strings.ToLower(strings.TrimSpace(v)))
	if !f.Valid() {
		return "", errors.Newf(errors.Configuration, "unknown color family %q", v).
			WithOp("palette.ParseColorFamily")
	}
	return f, nil
}
