package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/palette"
)

func forEachPair(t *testing.T, fn func(t *testing.T, scheme palette.ColorScheme, mode palette.Mode)) {
	t.Helper()
	for _, scheme := range palette.Schemes() {
		for _, mode := range palette.Modes() {
			t.Run(string(scheme)+"/"+string(mode), func(t *testing.T) {
				fn(t, scheme, mode)
			})
		}
	}
}

// =============================================================================
// Totality and Determinism
// =============================================================================

func TestBuild_Determinism(t *testing.T) {
	forEachPair(t, func(t *testing.T, scheme palette.ColorScheme, mode palette.Mode) {
		a := MustBuild(scheme, mode)
		b := MustBuild(scheme, mode)

		assert.NotSame(t, a, b)
		assert.Equal(t, a, b)
		assert.True(t, a.Equal(b))

		ya, err := yaml.Marshal(a.Map())
		require.NoError(t, err)
		yb, err := yaml.Marshal(b.Map())
		require.NoError(t, err)
		assert.Equal(t, string(ya), string(yb))
	})
}

func TestBuild_SchemesDiffer(t *testing.T) {
	blue := MustBuild(palette.SchemeBlue, palette.ModeLight)
	green := MustBuild(palette.SchemeGreen, palette.ModeLight)

	assert.False(t, blue.Equal(green))
	assert.NotEqual(t, blue.MustFamily(palette.FamilyPrimary).Pure, green.MustFamily(palette.FamilyPrimary).Pure)
	// Danger is a fixed red regardless of scheme.
	assert.Equal(t, blue.MustFamily(palette.FamilyDanger), green.MustFamily(palette.FamilyDanger))
}

// =============================================================================
// Derivation Invariants
// =============================================================================

func TestBuild_ModeInversion(t *testing.T) {
	const midpoint = 0.5
	for _, scheme := range palette.Schemes() {
		light := MustBuild(scheme, palette.ModeLight)
		dark := MustBuild(scheme, palette.ModeDark)
		for _, family := range palette.Families() {
			lightBg := Lightness(light.MustFamily(family).Bg)
			darkBg := Lightness(dark.MustFamily(family).Bg)
			assert.Greater(t, lightBg, midpoint, "%s/%s light bg", scheme, family)
			assert.Less(t, darkBg, midpoint, "%s/%s dark bg", scheme, family)
		}
	}
}

func TestBuild_PureDistinctFromBg(t *testing.T) {
	forEachPair(t, func(t *testing.T, scheme palette.ColorScheme, mode palette.Mode) {
		tok := MustBuild(scheme, mode)
		for _, family := range palette.Families() {
			ft := tok.MustFamily(family)
			assert.Greater(t, Distance(ft.Pure, ft.Bg), 0.1, "%s pure vs bg", family)
		}
	})
}

func TestBuild_TextLegibleOverBg(t *testing.T) {
	forEachPair(t, func(t *testing.T, scheme palette.ColorScheme, mode palette.Mode) {
		tok := MustBuild(scheme, mode)
		for _, family := range palette.Families() {
			ft := tok.MustFamily(family)
			assert.Greater(t, Distance(ft.Text, ft.Bg), 0.4, "%s text vs bg", family)
		}
	})
}

func TestBuild_ShadeMovesAwayFromCanvas(t *testing.T) {
	for _, scheme := range palette.Schemes() {
		light := MustBuild(scheme, palette.ModeLight).MustFamily(palette.FamilyPrimary)
		dark := MustBuild(scheme, palette.ModeDark).MustFamily(palette.FamilyPrimary)

		assert.Less(t, Lightness(light.Shade), Lightness(light.Pure), "%s light", scheme)
		assert.Greater(t, Lightness(dark.Shade), Lightness(dark.Pure), "%s dark", scheme)
	}
}

func TestBuild_TextOppositeIsInk(t *testing.T) {
	forEachPair(t, func(t *testing.T, scheme palette.ColorScheme, mode palette.Mode) {
		tok := MustBuild(scheme, mode)
		for _, family := range palette.Families() {
			ink := tok.MustFamily(family).TextOpposite
			assert.Contains(t, []string{palette.InkLight, palette.InkDark}, ink)
		}
	})
}

func TestBuild_CanvasFollowsMode(t *testing.T) {
	assert.Equal(t, palette.CanvasLight, MustBuild(palette.SchemeBlue, palette.ModeLight).Canvas())
	assert.Equal(t, palette.CanvasDark, MustBuild(palette.SchemeBlue, palette.ModeDark).Canvas())
}

// =============================================================================
// Configuration Errors
// =============================================================================

func TestBuild_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		scheme palette.ColorScheme
		mode   palette.Mode
	}{
		{"unknown scheme", "purple", palette.ModeLight},
		{"empty scheme", "", palette.ModeDark},
		{"unknown mode", palette.SchemeBlue, "sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Build(tt.scheme, tt.mode)
			require.Error(t, err)
			assert.Nil(t, tok)
			assert.True(t, errors.IsConfiguration(err))
			assert.Contains(t, err.Error(), "tokens.Build")
		})
	}
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { MustBuild("purple", palette.ModeLight) })
}

func TestFamily_Unknown(t *testing.T) {
	tok := MustBuild(palette.SchemeOrange, palette.ModeDark)

	_, err := tok.Family("info")
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Panics(t, func() { tok.MustFamily("info") })
}

func TestMap_IsCopy(t *testing.T) {
	tok := MustBuild(palette.SchemeBlue, palette.ModeLight)
	m := tok.Map()
	original := m["primary"]

	ft := m["primary"]
	ft.Pure = "#000000"
	m["primary"] = ft

	assert.Equal(t, original, tok.MustFamily(palette.FamilyPrimary))
}

func TestEqual_Nil(t *testing.T) {
	var a, b *AppColorTokens
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustBuild(palette.SchemeBlue, palette.ModeLight)))
}
