// Package component holds one token generator per UI primitive. Every
// generator is a pure function of AppColorTokens, variant and size; the mode
// is always the one the token table was built for. A generator returns nil
// while tokens are unavailable and a fully resolved struct otherwise.
// Generators share a single state-precedence helper, a single size table and
// a single gradient builder.
package component

import (
	"strings"

	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// Variant is a component-level style family.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantTertiary  Variant = "tertiary"
	VariantAccent    Variant = "accent"
	VariantSuccess   Variant = "success"
	VariantWarning   Variant = "warning"
	VariantDanger    Variant = "danger"
	VariantNeutral   Variant = "neutral"
	VariantWhite     Variant = "white"
)

// Variants returns every variant in display order.
func Variants() []Variant {
	return []Variant{
		VariantDefault,
		VariantPrimary,
		VariantSecondary,
		VariantTertiary,
		VariantAccent,
		VariantSuccess,
		VariantWarning,
		VariantDanger,
		VariantNeutral,
		VariantWhite,
	}
}

// ParseVariant parses a variant name. The empty string is the default variant.
func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return VariantDefault, true
	}
	for _, known := range Variants() {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// Family maps v onto its color family. The default variant, the zero value
// and unknown variants all map to primary.
func (v Variant) Family() palette.ColorFamily {
	switch v {
	case VariantSecondary:
		return palette.FamilySecondary
	case VariantTertiary:
		return palette.FamilyTertiary
	case VariantAccent:
		return palette.FamilyAccent
	case VariantSuccess:
		return palette.FamilySuccess
	case VariantWarning:
		return palette.FamilyWarning
	case VariantDanger:
		return palette.FamilyDanger
	case VariantNeutral:
		return palette.FamilyNeutral
	case VariantWhite:
		return palette.FamilyWhite
	default:
		return palette.FamilyPrimary
	}
}

// kit bundles the families a generator draws from.
type kit struct {
	mode    palette.Mode
	canvas  string
	fam     tokens.FamilyTokens
	neutral tokens.FamilyTokens
	danger  tokens.FamilyTokens
	success tokens.FamilyTokens
}

// newKit takes every mode-dependent choice from t. A mode argument that
// disagrees with t.Mode() is ignored.
func newKit(t *tokens.AppColorTokens, _ palette.Mode, v Variant) kit {
	return kit{
		mode:    t.Mode(),
		canvas:  t.Canvas(),
		fam:     t.MustFamily(v.Family()),
		neutral: t.MustFamily(palette.FamilyNeutral),
		danger:  t.MustFamily(palette.FamilyDanger),
		success: t.MustFamily(palette.FamilySuccess),
	}
}

// shadow returns a drop-shadow color; dark canvases need a heavier one.
func (k kit) shadow() string {
	if k.mode.IsDark() {
		return tokens.WithAlpha("#000000", 0.45)
	}
	return tokens.WithAlpha("#0f172a", 0.10)
}

func (k kit) focusRing() string {
	if k.mode.IsDark() {
		return tokens.WithAlpha(k.fam.Pure, 0.45)
	}
	return tokens.WithAlpha(k.fam.Pure, 0.35)
}

// field is the resting background of form controls: a faint family tint.
func (k kit) field() string {
	return tokens.Mix(k.fam.Bg, k.canvas, 0.6)
}

func (k kit) restingBorder() string {
	return tokens.Mix(k.neutral.Pure, k.canvas, 0.55)
}
