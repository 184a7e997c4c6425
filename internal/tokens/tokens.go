// Package tokens is the base token builder. Build turns a color scheme and a
// mode into AppColorTokens: for every color family, a fixed set of tones
// derived from the family's seed and the mode's canvas.
package tokens

import (
	"sort"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/palette"
)

// Tone names one variant within a color family.
type Tone string

const (
	TonePure         Tone = "pure"
	ToneText         Tone = "text"
	ToneTextShade    Tone = "textShade"
	ToneTextOpposite Tone = "textOpposite"
	ToneBg           Tone = "bg"
	ToneBgShade      Tone = "bgShade"
	ToneShade        Tone = "shade"
)

// Tones returns every tone in a fixed order.
func Tones() []Tone {
	return []Tone{TonePure, ToneText, ToneTextShade, ToneTextOpposite, ToneBg, ToneBgShade, ToneShade}
}

// FamilyTokens holds the tones of one color family.
type FamilyTokens struct {
	// Pure is the saturated reference color.
	Pure string `yaml:"pure" json:"pure"`
	// Text is the foreground-safe tone, legible over Bg.
	Text string `yaml:"text" json:"text"`
	// TextShade is a muted foreground.
	TextShade string `yaml:"textShade" json:"textShade"`
	// TextOpposite is the ink placed directly on Pure.
	TextOpposite string `yaml:"textOpposite" json:"textOpposite"`
	// Bg is a low-saturation tint of Pure toward the canvas.
	Bg string `yaml:"bg" json:"bg"`
	// BgShade is a stronger tint, between Bg and Pure.
	BgShade string `yaml:"bgShade" json:"bgShade"`
	// Shade is the emphasis tone, moved away from the canvas.
	Shade string `yaml:"shade" json:"shade"`
}

// Get returns the value of tone.
func (f FamilyTokens) Get(tone Tone) (string, bool) {
	switch tone {
	case TonePure:
		return f.Pure, true
	case ToneText:
		return f.Text, true
	case ToneTextShade:
		return f.TextShade, true
	case ToneTextOpposite:
		return f.TextOpposite, true
	case ToneBg:
		return f.Bg, true
	case ToneBgShade:
		return f.BgShade, true
	case ToneShade:
		return f.Shade, true
	}
	return "", false
}

// AppColorTokens maps every color family to its tones for one scheme and
// mode. Values are never modified after Build returns; a scheme or mode
// change produces a new value, so pointer identity is a valid cache key.
type AppColorTokens struct {
	scheme   palette.ColorScheme
	mode     palette.Mode
	canvas   string
	families map[palette.ColorFamily]FamilyTokens
}

// Scheme returns the scheme the tokens were built for.
func (t *AppColorTokens) Scheme() palette.ColorScheme { return t.scheme }

// Mode returns the mode the tokens were built for.
func (t *AppColorTokens) Mode() palette.Mode { return t.mode }

// Canvas returns the page background of the tokens' mode.
func (t *AppColorTokens) Canvas() string { return t.canvas }

// Family returns the tones of f. An unknown family is a configuration error.
func (t *AppColorTokens) Family(f palette.ColorFamily) (FamilyTokens, error) {
	ft, ok := t.families[f]
	if !ok {
		return FamilyTokens{}, errors.Newf(errors.Configuration, "unknown color family %q", f).
			WithOp("tokens.Family")
	}
	return ft, nil
}

// MustFamily is Family for callers holding a family constant. It panics on
// an unknown family.
func (t *AppColorTokens) MustFamily(f palette.ColorFamily) FamilyTokens {
	ft, err := t.Family(f)
	if err != nil {
		panic(err)
	}
	return ft
}

// Map returns a copy of the family table keyed by family name, suitable for
// serialization.
func (t *AppColorTokens) Map() map[string]FamilyTokens {
	out := make(map[string]FamilyTokens, len(t.families))
	for f, ft := range t.families {
		out[string(f)] = ft
	}
	return out
}

// FamilyNames returns the families present, sorted by name.
func (t *AppColorTokens) FamilyNames() []string {
	names := make([]string, 0, len(t.families))
	for f := range t.families {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Equal reports whether t and o hold the same scheme, mode and values.
func (t *AppColorTokens) Equal(o *AppColorTokens) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.scheme != o.scheme || t.mode != o.mode || len(t.families) != len(o.families) {
		return false
	}
	for f, ft := range t.families {
		if o.families[f] != ft {
			return false
		}
	}
	return true
}
