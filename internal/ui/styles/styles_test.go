package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/palette"
	hutesting "github.com/tungetti/hue/internal/testing"
	"github.com/tungetti/hue/internal/tokens"
)

func blueLight(t *testing.T) component.Args {
	t.Helper()
	return hutesting.BlueLight(t).Args(component.VariantPrimary, component.SizeMD)
}

// =============================================================================
// Construction
// =============================================================================

func TestNew_NilTokensFallsBack(t *testing.T) {
	s := New(component.Args{})

	assert.False(t, s.Available)
	assert.Equal(t, FallbackBackground, s.Canvas)
	assert.Equal(t, lipgloss.Color(FallbackText), s.App.GetForeground())
	assert.Equal(t, FallbackAccent, s.SliderFill)

	assert.NotPanics(t, func() {
		_ = s.Card.Render("card")
		_ = s.InputFor(component.StateFlags{Error: true}).Render("input")
		_ = s.CellFor(component.StateFlags{Disabled: true}).Render("cell")
		_ = s.SliderFillFor(component.StateFlags{Disabled: true})
	})
	assert.Equal(t, component.StateDefault, s.InputState(component.StateFlags{Error: true}))
}

func TestNewStyles_NilTokens(t *testing.T) {
	s := NewStyles(nil, palette.ModeDark)
	assert.False(t, s.Available)
}

func TestNew_UsesGeneratorColors(t *testing.T) {
	a := blueLight(t)
	s := New(a)
	require.True(t, s.Available)

	canvas := a.Tokens.Canvas()
	assert.Equal(t, canvas, s.Canvas)

	card := component.Card(a.Tokens, a.Mode, a.Variant, a.Size)
	assert.Equal(t, lipgloss.Color(tokens.Flatten(card.Background, canvas)), s.Card.GetBackground())
	assert.Equal(t, lipgloss.Color(tokens.Flatten(card.Title, canvas)), s.CardTitle.GetForeground())

	nav := component.Navbar(a.Tokens, a.Mode, a.Variant, a.Size)
	assert.Equal(t, lipgloss.Color(tokens.Flatten(nav.Brand, canvas)), s.NavBrand.GetForeground())

	slider := component.Slider(a.Tokens, a.Mode, a.Variant, a.Size)
	assert.Equal(t, tokens.Flatten(slider.Fill, canvas), s.SliderFill)
	assert.Equal(t, tokens.Flatten(slider.Background, canvas), s.SliderTrack)
}

func TestNew_ColorsAreOpaque(t *testing.T) {
	hutesting.ForEachTheme(t, func(t *testing.T, th hutesting.Theme) {
		s := New(th.Args(component.VariantSecondary, component.SizeSM))

		for name, st := range map[string]lipgloss.Style{
			"dialog header": s.DialogHeader,
			"table header":  s.TableHeader,
			"selected":      s.TableSelected,
			"check":         s.CheckChecked,
		} {
			bg, ok := st.GetBackground().(lipgloss.Color)
			require.True(t, ok, name)
			hutesting.AssertOpaque(t, string(bg), name)
		}
		hutesting.AssertOpaque(t, s.SliderFill, "slider fill")
		hutesting.AssertOpaque(t, s.SliderTrack, "slider track")
	})
}

func TestNew_GradientsFollowOptions(t *testing.T) {
	a := blueLight(t)
	assert.Nil(t, New(a).ProFill)

	a.Gradient = component.GradientOptions{Gradient: true}
	s := New(a)
	require.NotNil(t, s.ProFill)
	require.NotNil(t, s.LogoFill)
}

// =============================================================================
// Per-state resolution
// =============================================================================

func TestInputFor(t *testing.T) {
	a := blueLight(t)
	s := New(a)
	input := component.Input(a.Tokens, a.Mode, a.Variant, a.Size)
	flat := func(hex string) lipgloss.Color { return lipgloss.Color(tokens.Flatten(hex, s.Canvas)) }

	tests := []struct {
		name  string
		flags component.StateFlags
		state component.State
		bg    string
	}{
		{"resting", component.StateFlags{}, component.StateDefault, input.Background},
		{"error", component.StateFlags{Error: true}, component.StateError, input.States.Error.Background},
		{"disabled wins", component.StateFlags{Disabled: true, Error: true, Editing: true}, component.StateDisabled, input.States.Disabled.Background},
		{"readOnly over success", component.StateFlags{ReadOnly: true, Success: true}, component.StateReadOnly, input.States.ReadOnly.Background},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.state, s.InputState(tt.flags))
			assert.Equal(t, flat(tt.bg), s.InputFor(tt.flags).GetBackground())
		})
	}
}

func TestInputFor_EditingUsesFocusBorder(t *testing.T) {
	a := blueLight(t)
	s := New(a)
	input := component.Input(a.Tokens, a.Mode, a.Variant, a.Size)

	st := s.InputFor(component.StateFlags{Editing: true})
	assert.Equal(t, lipgloss.Color(tokens.Flatten(input.FocusBorder, s.Canvas)), st.GetBorderTopForeground())
}

func TestSliderFillFor(t *testing.T) {
	a := blueLight(t)
	s := New(a)
	slider := component.Slider(a.Tokens, a.Mode, a.Variant, a.Size)

	assert.Equal(t, s.SliderFill, s.SliderFillFor(component.StateFlags{}))
	assert.Equal(t, tokens.Flatten(slider.DisabledFill, s.Canvas), s.SliderFillFor(component.StateFlags{Disabled: true}))
	assert.NotEqual(t, s.SliderFill, s.SliderFillFor(component.StateFlags{Error: true}))
}

func TestCellFor_Disabled(t *testing.T) {
	a := blueLight(t)
	s := New(a)
	cell := component.TableCell(a.Tokens, a.Mode, a.Variant, a.Size)

	got := s.CellFor(component.StateFlags{Disabled: true}).GetForeground()
	assert.Equal(t, lipgloss.Color(tokens.Flatten(cell.States.Disabled.Text, s.Canvas)), got)
}

// =============================================================================
// Size mapping
// =============================================================================

func TestBorder(t *testing.T) {
	tests := []struct {
		size     component.Size
		expected lipgloss.Border
	}{
		{component.SizeXS, lipgloss.NormalBorder()},
		{component.SizeSM, lipgloss.NormalBorder()},
		{component.SizeMD, lipgloss.RoundedBorder()},
		{component.SizeLG, lipgloss.ThickBorder()},
		{component.SizeXL, lipgloss.ThickBorder()},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			assert.Equal(t, tt.expected, Border(component.DimensionsFor(tt.size)))
		})
	}
}

func TestPadding(t *testing.T) {
	xs := component.DimensionsFor(component.SizeXS)
	xl := component.DimensionsFor(component.SizeXL)

	assert.Equal(t, 1, padX(xs))
	assert.Equal(t, 3, padX(xl))
	assert.Equal(t, 0, padY(xs))
	assert.Equal(t, 1, padY(xl))
}

func TestDimensions(t *testing.T) {
	a := blueLight(t)
	a.Size = component.SizeLG
	assert.Equal(t, component.DimensionsFor(component.SizeLG), New(a).Dimensions())
}

// =============================================================================
// Gradients
// =============================================================================

func TestGradientBar(t *testing.T) {
	g := &component.Gradient{Stops: []component.GradientStop{
		{Offset: 0, Color: "#000000"},
		{Offset: 1, Color: "#ffffff"},
	}}

	assert.Equal(t, "", GradientBar(g, 0))
	assert.Equal(t, "   ", GradientBar(nil, 3))
	assert.Equal(t, 12, lipgloss.Width(GradientBar(g, 12)))
}

func TestColorAt(t *testing.T) {
	g := &component.Gradient{Stops: []component.GradientStop{
		{Offset: 0, Color: "#3b82f6"},
		{Offset: 0.5, Color: "#22c55e"},
		{Offset: 1, Color: "#f97316"},
	}}

	assert.Equal(t, "#3b82f6", ColorAt(g, 0))
	assert.Equal(t, "#22c55e", ColorAt(g, 0.5))
	assert.Equal(t, "#f97316", ColorAt(g, 1))
	assert.Equal(t, tokens.MixLab("#3b82f6", "#22c55e", 0.5), ColorAt(g, 0.25))
}
