package tokens

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/palette"
)

// Derivation constants. Light and dark mode share the formulas; only the
// canvas and the direction of the lightness moves differ.
const (
	bgBlend      = 0.88
	bgShadeBlend = 0.74
	shadeShift   = 0.14

	textLightL      = 0.28
	textDarkL       = 0.82
	textDarkSat     = 0.90
	textShadeLightL = 0.45
	textShadeDarkL  = 0.68
	textShadeLightS = 0.35
	textShadeDarkS  = 0.30

	// Pure colors with a Lab lightness above this take dark ink.
	inkThreshold = 0.62
)

// Build derives the complete token table for scheme and mode. It is pure:
// equal inputs always produce equal outputs. An unknown scheme or mode is a
// configuration error; there is no fallback to a default.
func Build(scheme palette.ColorScheme, mode palette.Mode) (*AppColorTokens, error) {
	if !scheme.Valid() {
		return nil, errors.Newf(errors.Configuration, "unknown color scheme %q", scheme).
			WithOp("tokens.Build")
	}
	if !mode.Valid() {
		return nil, errors.Newf(errors.Configuration, "unknown mode %q", mode).
			WithOp("tokens.Build")
	}

	canvas := palette.Canvas(mode)
	families := make(map[palette.ColorFamily]FamilyTokens, len(palette.Families()))
	for _, family := range palette.Families() {
		if family == palette.FamilyWhite {
			families[family] = whiteFamily(mode)
			continue
		}
		seed, ok := palette.Seed(scheme, mode, family)
		if !ok {
			return nil, errors.Newf(errors.Configuration, "no seed for family %q in scheme %q", family, scheme).
				WithOp("tokens.Build")
		}
		families[family] = deriveFamily(seed, mode, canvas)
	}

	return &AppColorTokens{
		scheme:   scheme,
		mode:     mode,
		canvas:   canvas,
		families: families,
	}, nil
}

// MustBuild is Build for constant inputs; it panics on a configuration error.
func MustBuild(scheme palette.ColorScheme, mode palette.Mode) *AppColorTokens {
	t, err := Build(scheme, mode)
	if err != nil {
		panic(err)
	}
	return t
}

func deriveFamily(seed palette.HSL, mode palette.Mode, canvasHex string) FamilyTokens {
	pure := colorful.Hsl(seed.H, seed.S, seed.L)
	canvas := parseHex(canvasHex)

	var text, textShade, shade colorful.Color
	if mode.IsDark() {
		text = colorful.Hsl(seed.H, seed.S*textDarkSat, textDarkL)
		textShade = colorful.Hsl(seed.H, seed.S*textShadeDarkS, textShadeDarkL)
		shade = colorful.Hsl(seed.H, seed.S, clamp(seed.L+shadeShift))
	} else {
		text = colorful.Hsl(seed.H, seed.S, textLightL)
		textShade = colorful.Hsl(seed.H, seed.S*textShadeLightS, textShadeLightL)
		shade = colorful.Hsl(seed.H, seed.S, clamp(seed.L-shadeShift))
	}

	return FamilyTokens{
		Pure:         toHex(pure),
		Text:         toHex(text),
		TextShade:    toHex(textShade),
		TextOpposite: inkFor(pure),
		Bg:           toHex(pure.BlendRgb(canvas, bgBlend)),
		BgShade:      toHex(pure.BlendRgb(canvas, bgShadeBlend)),
		Shade:        toHex(shade),
	}
}

func whiteFamily(mode palette.Mode) FamilyTokens {
	w := palette.WhiteTable(mode)
	return FamilyTokens{
		Pure:         w[string(TonePure)],
		Text:         w[string(ToneText)],
		TextShade:    w[string(ToneTextShade)],
		TextOpposite: w[string(ToneTextOpposite)],
		Bg:           w[string(ToneBg)],
		BgShade:      w[string(ToneBgShade)],
		Shade:        w[string(ToneShade)],
	}
}

func inkFor(c colorful.Color) string {
	l, _, _ := c.Lab()
	if l > inkThreshold {
		return palette.InkDark
	}
	return palette.InkLight
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
