package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/hue/internal/errors"
)

// =============================================================================
// Enumeration Tests
// =============================================================================

func TestParseColorScheme(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorScheme
		valid    bool
	}{
		{"blue", SchemeBlue, true},
		{"GREEN", SchemeGreen, true},
		{" orange ", SchemeOrange, true},
		{"purple", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorScheme(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.True(t, errors.IsConfiguration(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Dark")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("sepia")
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "sepia")
}

func TestParseColorFamily(t *testing.T) {
	for _, f := range Families() {
		got, err := ParseColorFamily(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseColorFamily("info")
	assert.True(t, errors.IsConfiguration(err))
}

func TestSchemeNextCycles(t *testing.T) {
	assert.Equal(t, SchemeGreen, SchemeBlue.Next())
	assert.Equal(t, SchemeOrange, SchemeGreen.Next())
	assert.Equal(t, SchemeBlue, SchemeOrange.Next())
	assert.Equal(t, DefaultScheme, ColorScheme("bogus").Next())
}

func TestModeOpposite(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Opposite())
	assert.Equal(t, ModeLight, ModeDark.Opposite())
	assert.True(t, ModeDark.IsDark())
	assert.False(t, ModeLight.IsDark())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, SchemeBlue, DefaultScheme)
	assert.Equal(t, ModeLight, DefaultMode)
}

// =============================================================================
// Seed Table Tests
// =============================================================================

func TestSeedDefinedForCrossProduct(t *testing.T) {
	for _, scheme := range Schemes() {
		for _, mode := range Modes() {
			for _, family := range Families() {
				if family == FamilyWhite {
					_, ok := Seed(scheme, mode, family)
					assert.False(t, ok, "white is a literal table, not a seed")
					assert.NotEmpty(t, WhiteTable(mode))
					continue
				}
				seed, ok := Seed(scheme, mode, family)
				require.True(t, ok, "%s/%s/%s", scheme, mode, family)
				assert.GreaterOrEqual(t, seed.H, 0.0)
				assert.Less(t, seed.H, 360.0)
				assert.InDelta(t, 0.5, seed.S, 0.5)
				assert.InDelta(t, 0.5, seed.L, 0.5)
			}
		}
	}
}

func TestSeedDangerIgnoresScheme(t *testing.T) {
	blue, _ := Seed(SchemeBlue, ModeLight, FamilyDanger)
	orange, _ := Seed(SchemeOrange, ModeLight, FamilyDanger)
	assert.Equal(t, blue, orange)
	assert.Equal(t, 0.0, blue.H)
}

func TestSeedDarkLift(t *testing.T) {
	light, _ := Seed(SchemeGreen, ModeLight, FamilyPrimary)
	dark, _ := Seed(SchemeGreen, ModeDark, FamilyPrimary)
	assert.Equal(t, light.H, dark.H)
	assert.InDelta(t, light.L+darkLift, dark.L, 1e-9)
}

func TestSeedInvalidInputs(t *testing.T) {
	_, ok := Seed("purple", ModeLight, FamilyPrimary)
	assert.False(t, ok)
	_, ok = Seed(SchemeBlue, "sepia", FamilyPrimary)
	assert.False(t, ok)
	_, ok = Seed(SchemeBlue, ModeLight, "info")
	assert.False(t, ok)
}

func TestCanvas(t *testing.T) {
	assert.Equal(t, CanvasLight, Canvas(ModeLight))
	assert.Equal(t, CanvasDark, Canvas(ModeDark))
}

func TestWhiteTableHasAllVariants(t *testing.T) {
	keys := []string{"pure", "text", "textShade", "textOpposite", "bg", "bgShade", "shade"}
	for _, mode := range Modes() {
		table := WhiteTable(mode)
		for _, k := range keys {
			assert.Regexp(t, `^#[0-9a-f]{6}$`, table[k], "%s %s", mode, k)
		}
	}
}
