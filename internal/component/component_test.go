package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// =============================================================================
// End-to-end
// =============================================================================

func TestInput_BlueLightPrimaryMD(t *testing.T) {
	tok, err := tokens.Build(palette.SchemeBlue, palette.ModeLight)
	require.NoError(t, err)

	in := Input(tok, palette.ModeLight, VariantPrimary, SizeMD)
	require.NotNil(t, in)

	require.NotNil(t, in.States.Disabled)
	require.NotNil(t, in.States.Error)
	require.NotNil(t, in.States.Success)

	assert.NotEqual(t, in.Background, in.States.Disabled.Background)
	assert.NotEqual(t, in.Border, in.FocusRing)
	assert.NotEqual(t, in.Background, in.States.Error.Background)
	assert.NotEqual(t, in.States.Success.Background, in.States.Error.Background)
	assert.Equal(t, sizeTable[SizeMD], in.Size)

	assert.Equal(t, in.States.Error.Background, in.Resolve(StateFlags{Error: true, Editing: true}).Background)
	assert.Equal(t, in.Surface, in.Resolve(StateFlags{}))
}

// =============================================================================
// Unavailable tokens
// =============================================================================

func TestGenerators_NilTokens(t *testing.T) {
	opts := GradientOptions{Gradient: true}
	assert.Nil(t, Card(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, ProCard(nil, palette.ModeLight, VariantPrimary, SizeMD, opts))
	assert.Nil(t, Input(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, Textarea(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, Icon(nil, palette.ModeLight, VariantPrimary, SizeMD, opts))
	assert.Nil(t, Slider(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, Check(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, Dialog(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, LoadingLogo(nil, palette.ModeLight, VariantPrimary, SizeMD, opts))
	assert.Nil(t, Navbar(nil, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Nil(t, TableCell(nil, palette.ModeLight, VariantPrimary, SizeMD))
}

// =============================================================================
// Totality over every generator input
// =============================================================================

func TestRegistry_TotalOverInputs(t *testing.T) {
	for _, scheme := range palette.Schemes() {
		for _, mode := range palette.Modes() {
			tok := tokens.MustBuild(scheme, mode)
			for _, name := range Names() {
				for _, v := range Variants() {
					a := Args{Tokens: tok, Mode: mode, Variant: v, Size: SizeLG, Gradient: GradientOptions{Gradient: true}}
					out, err := Generate(name, a)
					require.NoError(t, err, "%s %s/%s %s", name, scheme, mode, v)
					s := out.Resolve(StateFlags{})
					assert.True(t, tokens.ValidHex(s.Background), "%s %s background %q", name, v, s.Background)
					assert.True(t, tokens.ValidHex(s.Text), "%s %s text %q", name, v, s.Text)
				}
			}
		}
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	a := tokens.MustBuild(palette.SchemeGreen, palette.ModeDark)
	b := tokens.MustBuild(palette.SchemeGreen, palette.ModeDark)

	x, err := yaml.Marshal(Textarea(a, palette.ModeDark, VariantWarning, SizeXL))
	require.NoError(t, err)
	y, err := yaml.Marshal(Textarea(b, palette.ModeDark, VariantWarning, SizeXL))
	require.NoError(t, err)
	assert.Equal(t, string(x), string(y))
}

func TestGenerators_ModeFollowsTokens(t *testing.T) {
	dark := tokens.MustBuild(palette.SchemeBlue, palette.ModeDark)

	assert.Equal(t,
		Input(dark, palette.ModeDark, VariantPrimary, SizeMD),
		Input(dark, palette.ModeLight, VariantPrimary, SizeMD))
	assert.Equal(t,
		Card(dark, palette.ModeDark, VariantAccent, SizeLG),
		Card(dark, palette.ModeLight, VariantAccent, SizeLG))
	assert.Equal(t,
		Dialog(dark, palette.ModeDark, VariantPrimary, SizeMD).Overlay,
		Dialog(dark, palette.ModeLight, VariantPrimary, SizeMD).Overlay)
	assert.NotEqual(t,
		Dialog(dark, palette.ModeDark, VariantPrimary, SizeMD).Overlay,
		Dialog(tokens.MustBuild(palette.SchemeBlue, palette.ModeLight), palette.ModeLight, VariantPrimary, SizeMD).Overlay)
}

// =============================================================================
// Variants and sizes
// =============================================================================

func TestVariant_DefaultMapsToPrimary(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeOrange, palette.ModeLight)

	def := Card(tok, palette.ModeLight, VariantDefault, SizeMD)
	zero := Card(tok, palette.ModeLight, "", SizeMD)
	unknown := Card(tok, palette.ModeLight, Variant("fuchsia"), SizeMD)
	primary := Card(tok, palette.ModeLight, VariantPrimary, SizeMD)

	assert.Equal(t, primary, def)
	assert.Equal(t, primary, zero)
	assert.Equal(t, primary, unknown)
}

func TestParseVariant(t *testing.T) {
	v, ok := ParseVariant(" Danger ")
	assert.True(t, ok)
	assert.Equal(t, VariantDanger, v)

	v, ok = ParseVariant("")
	assert.True(t, ok)
	assert.Equal(t, VariantDefault, v)

	_, ok = ParseVariant("fuchsia")
	assert.False(t, ok)
}

func TestVariant_ChangesColors(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)
	p := Card(tok, palette.ModeLight, VariantPrimary, SizeMD)
	d := Card(tok, palette.ModeLight, VariantDanger, SizeMD)
	assert.NotEqual(t, p.Background, d.Background)
}

func TestSize_IndependentOfColor(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeDark)

	small := Input(tok, palette.ModeDark, VariantAccent, SizeXS)
	large := Input(tok, palette.ModeDark, VariantAccent, SizeXL)
	assert.NotEqual(t, small.Size, large.Size)

	small.Size, large.Size = Dimensions{}, Dimensions{}
	assert.Equal(t, small, large)

	light := Card(tokens.MustBuild(palette.SchemeGreen, palette.ModeLight), palette.ModeLight, VariantTertiary, SizeSM)
	assert.Equal(t, sizeTable[SizeSM], light.Size)
}

func TestSize_Parse(t *testing.T) {
	tests := []struct {
		in   string
		want Size
		ok   bool
	}{
		{"", SizeMD, true},
		{"XL", SizeXL, true},
		{"xs", SizeXS, true},
		{"huge", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSize(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSize_Steps(t *testing.T) {
	assert.Equal(t, SizeLG, SizeMD.Larger())
	assert.Equal(t, SizeXL, SizeXL.Larger())
	assert.Equal(t, SizeXS, SizeXS.Smaller())
	assert.Equal(t, SizeSM, SizeMD.Smaller())
	assert.Equal(t, sizeTable[SizeMD], DimensionsFor("bogus"))
}

// =============================================================================
// Supported states per generator
// =============================================================================

func TestGenerators_SupportedStates(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)
	all := []State{StateDisabled, StateReadOnly, StateError, StateSuccess, StateEditing}

	tests := []struct {
		name string
		got  StateSurfaces
		want []State
	}{
		{"card", Card(tok, palette.ModeLight, VariantPrimary, SizeMD).States, []State{StateDisabled}},
		{"input", Input(tok, palette.ModeLight, VariantPrimary, SizeMD).States, all},
		{"textarea", Textarea(tok, palette.ModeLight, VariantPrimary, SizeMD).States, all},
		{"check", Check(tok, palette.ModeLight, VariantPrimary, SizeMD).States, []State{StateDisabled, StateReadOnly, StateError, StateSuccess}},
		{"slider", Slider(tok, palette.ModeLight, VariantPrimary, SizeMD).States, []State{StateDisabled, StateReadOnly, StateError}},
		{"navbar", Navbar(tok, palette.ModeLight, VariantPrimary, SizeMD).States, []State{StateDisabled}},
		{"tableCell", TableCell(tok, palette.ModeLight, VariantPrimary, SizeMD).States, all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Supported())
		})
	}
}

func TestDialog_IgnoresStates(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeDark)
	d := Dialog(tok, palette.ModeDark, VariantPrimary, SizeMD)
	assert.Equal(t, d.Surface, d.Resolve(StateFlags{Disabled: true, Error: true}))
	assert.Equal(t, tok.Canvas(), d.Background)
}

func TestCheck_EditingFallsThroughToDefault(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)
	c := Check(tok, palette.ModeLight, VariantPrimary, SizeMD)
	assert.Equal(t, c.Surface, c.Resolve(StateFlags{Editing: true}))
}

func TestSlider_FillFor(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeGreen, palette.ModeLight)
	s := Slider(tok, palette.ModeLight, VariantPrimary, SizeMD)

	assert.Equal(t, s.Fill, s.FillFor(StateFlags{}))
	assert.Equal(t, s.DisabledFill, s.FillFor(StateFlags{Disabled: true, Error: true}))
	assert.Equal(t, tok.MustFamily(palette.FamilyDanger).Pure, s.FillFor(StateFlags{Error: true}))
}

func TestTextarea_ExtendsInput(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeOrange, palette.ModeDark)
	in := Input(tok, palette.ModeDark, VariantSecondary, SizeSM)
	ta := Textarea(tok, palette.ModeDark, VariantSecondary, SizeSM)

	assert.Equal(t, *in, ta.InputTokens)
	assert.Equal(t, sizeTable[SizeSM].Height*3, ta.MinHeight)
	assert.Equal(t, tok.MustFamily(palette.FamilyDanger).Pure, ta.CounterLimit)
}

func TestProCard_FlatWithoutGradient(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)
	pc := ProCard(tok, palette.ModeLight, VariantPrimary, SizeMD, GradientOptions{})
	card := Card(tok, palette.ModeLight, VariantPrimary, SizeMD)

	assert.Nil(t, pc.Fill)
	assert.Nil(t, pc.Stroke)
	assert.Equal(t, *card, pc.CardTokens)
}
