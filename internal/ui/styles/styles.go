// Package styles maps component tokens onto lipgloss styles for terminal
// rendering. It is the only place where token strings become lipgloss colors.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// Fallback colors used while tokens are unavailable. They are neutral grays
// that read on both light and dark terminals.
const (
	FallbackText       = "#6b7280"
	FallbackMuted      = "#9ca3af"
	FallbackBorder     = "#4b5563"
	FallbackBackground = "#1f2937"
	FallbackAccent     = "#d1d5db"
)

// Styles contains pre-built lipgloss styles for one set of generator inputs.
type Styles struct {
	// Available is false when the styles are the hard-coded fallbacks.
	Available bool
	// Canvas is the page background.
	Canvas string

	// App-level styles
	App    lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style

	// Card
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style
	ProCard      lipgloss.Style
	ProAccent    lipgloss.Style

	// Input label and helper; the field itself is resolved per state.
	InputLabel  lipgloss.Style
	InputHelper lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogHeader lipgloss.Style
	DialogClose  lipgloss.Style

	// Navbar
	Navbar        lipgloss.Style
	NavBrand      lipgloss.Style
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style

	// Table
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableCellAlt  lipgloss.Style
	TableSelected lipgloss.Style

	// Check
	Check        lipgloss.Style
	CheckChecked lipgloss.Style
	CheckLabel   lipgloss.Style

	// Icon and loading logo
	Icon    lipgloss.Style
	Spinner lipgloss.Style

	// Slider colors feed a bubbles progress bar, which takes hex strings.
	SliderFill  string
	SliderTrack string

	// Gradients, nil when not requested.
	ProFill    *component.Gradient
	IconStroke *component.Gradient
	LogoFill   *component.Gradient

	input  *component.InputTokens
	table  *component.TableCellTokens
	slider *component.SliderTokens
	size   component.Dimensions
}

// NewStyles builds styles for the default variant and size.
func NewStyles(t *tokens.AppColorTokens, mode palette.Mode) Styles {
	return New(component.Args{Tokens: t, Mode: mode, Variant: component.VariantDefault, Size: component.DefaultSize})
}

// New builds styles from every generator for a. When a.Tokens is nil it
// returns Fallback().
func New(a component.Args) Styles {
	if a.Tokens == nil {
		return Fallback()
	}

	canvas := a.Tokens.Canvas()
	flat := func(hex string) lipgloss.Color {
		return lipgloss.Color(tokens.Flatten(hex, canvas))
	}

	card := component.Card(a.Tokens, a.Mode, a.Variant, a.Size)
	pro := component.ProCard(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient)
	input := component.Input(a.Tokens, a.Mode, a.Variant, a.Size)
	dialog := component.Dialog(a.Tokens, a.Mode, a.Variant, a.Size)
	nav := component.Navbar(a.Tokens, a.Mode, a.Variant, a.Size)
	cell := component.TableCell(a.Tokens, a.Mode, a.Variant, a.Size)
	check := component.Check(a.Tokens, a.Mode, a.Variant, a.Size)
	icon := component.Icon(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient)
	logo := component.LoadingLogo(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient)
	slider := component.Slider(a.Tokens, a.Mode, a.Variant, a.Size)
	dims := card.Size

	s := Styles{
		Available: true,
		Canvas:    canvas,

		App:    lipgloss.NewStyle().Foreground(flat(nav.Text)),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(flat(nav.Brand)),
		Muted:  lipgloss.NewStyle().Foreground(flat(nav.Item)),
		Help:   lipgloss.NewStyle().Foreground(flat(input.Helper)),
		Status: lipgloss.NewStyle().Foreground(flat(input.FocusBorder)),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(flat(input.States.Error.Border)),

		Card:         Box(card.Surface, dims, canvas),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(flat(card.Title)),
		CardSubtitle: lipgloss.NewStyle().Foreground(flat(card.Subtitle)),
		ProCard:      Box(pro.Surface, dims, canvas),
		ProAccent:    lipgloss.NewStyle().Bold(true).Foreground(flat(pro.AccentText)).Background(flat(pro.Accent)),

		InputLabel:  lipgloss.NewStyle().Foreground(flat(input.Label)),
		InputHelper: lipgloss.NewStyle().Foreground(flat(input.Helper)).Italic(true),

		Dialog:       Box(dialog.Surface, dims, canvas).BorderForeground(flat(dialog.Accent)),
		DialogHeader: lipgloss.NewStyle().Bold(true).Foreground(flat(dialog.Title)).Background(flat(dialog.HeaderBackground)),
		DialogClose:  lipgloss.NewStyle().Foreground(flat(dialog.CloseIcon)),

		Navbar:        surfaceStyle(nav.Surface, canvas).Padding(0, padX(dims)),
		NavBrand:      lipgloss.NewStyle().Bold(true).Foreground(flat(nav.Brand)),
		NavItem:       lipgloss.NewStyle().Foreground(flat(nav.Item)).Padding(0, 1),
		NavItemActive: lipgloss.NewStyle().Foreground(flat(nav.ItemActive)).Background(flat(nav.ItemActiveBackground)).Padding(0, 1),

		TableHeader:   lipgloss.NewStyle().Bold(true).Foreground(flat(cell.HeaderText)).Background(flat(cell.HeaderBackground)).Padding(0, 1),
		TableCell:     surfaceStyle(cell.Surface, canvas).Padding(0, 1),
		TableCellAlt:  surfaceStyle(cell.Surface, canvas).Background(flat(cell.AltBackground)).Padding(0, 1),
		TableSelected: lipgloss.NewStyle().Foreground(flat(cell.SelectedText)).Background(flat(cell.SelectedBackground)).Padding(0, 1),

		Check:        lipgloss.NewStyle().Foreground(flat(check.Border)).Background(flat(check.Background)),
		CheckChecked: lipgloss.NewStyle().Foreground(flat(check.Mark)).Background(flat(check.CheckedBackground)),
		CheckLabel:   lipgloss.NewStyle().Foreground(flat(check.Label)),

		Icon:    lipgloss.NewStyle().Foreground(flat(icon.Foreground)).Background(flat(icon.Background)).Padding(0, 1),
		Spinner: lipgloss.NewStyle().Foreground(flat(logo.Primary)),

		SliderFill:  tokens.Flatten(slider.Fill, canvas),
		SliderTrack: tokens.Flatten(slider.Background, canvas),

		ProFill:    pro.Fill,
		IconStroke: icon.Stroke,
		LogoFill:   logo.Fill,

		input:  input,
		table:  cell,
		slider: slider,
		size:   dims,
	}
	if pro.Stroke != nil {
		s.ProCard = s.ProCard.BorderForeground(flat(pro.Stroke.First()))
	} else {
		s.ProCard = s.ProCard.BorderForeground(flat(pro.Border))
	}
	return s
}

// Fallback returns styles built from the hard-coded neutral grays. Rendering
// with them never panics.
func Fallback() Styles {
	text := lipgloss.Color(FallbackText)
	muted := lipgloss.Color(FallbackMuted)
	border := lipgloss.Color(FallbackBorder)
	accent := lipgloss.Color(FallbackAccent)
	plain := lipgloss.NewStyle().Foreground(text)
	boxed := plain.Copy().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)

	return Styles{
		Canvas:        FallbackBackground,
		App:           plain,
		Title:         plain.Copy().Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(muted),
		Help:          lipgloss.NewStyle().Foreground(muted),
		Status:        lipgloss.NewStyle().Foreground(accent),
		Error:         plain.Copy().Bold(true),
		Card:          boxed,
		CardTitle:     plain.Copy().Bold(true),
		CardSubtitle:  lipgloss.NewStyle().Foreground(muted),
		ProCard:       boxed,
		ProAccent:     plain.Copy().Bold(true),
		InputLabel:    plain,
		InputHelper:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		Dialog:        boxed,
		DialogHeader:  plain.Copy().Bold(true),
		DialogClose:   lipgloss.NewStyle().Foreground(muted),
		Navbar:        plain.Copy().Padding(0, 1),
		NavBrand:      plain.Copy().Bold(true),
		NavItem:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		NavItemActive: plain.Copy().Underline(true).Padding(0, 1),
		TableHeader:   plain.Copy().Bold(true).Padding(0, 1),
		TableCell:     plain.Copy().Padding(0, 1),
		TableCellAlt:  lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		TableSelected: plain.Copy().Reverse(true).Padding(0, 1),
		Check:         lipgloss.NewStyle().Foreground(border),
		CheckChecked:  lipgloss.NewStyle().Foreground(accent),
		CheckLabel:    plain,
		Icon:          lipgloss.NewStyle().Foreground(accent).Padding(0, 1),
		Spinner:       lipgloss.NewStyle().Foreground(accent),
		SliderFill:    FallbackAccent,
		SliderTrack:   FallbackBorder,
		size:          component.DimensionsFor(component.DefaultSize),
	}
}

// InputFor returns the input field style for flags. It resolves exactly one
// state surface.
func (s Styles) InputFor(f component.StateFlags) lipgloss.Style {
	if s.input == nil {
		return s.Card.Copy()
	}
	surf := s.input.Resolve(f)
	st := Box(surf, s.size, s.Canvas)
	state, _ := s.input.States.Resolve(s.input.Surface, f)
	if state == component.StateEditing {
		st = st.BorderForeground(lipgloss.Color(tokens.Flatten(s.input.FocusBorder, s.Canvas)))
	}
	return st
}

// InputState returns the state InputFor resolves for flags.
func (s Styles) InputState(f component.StateFlags) component.State {
	if s.input == nil {
		return component.StateDefault
	}
	state, _ := s.input.States.Resolve(s.input.Surface, f)
	return state
}

// CellFor returns the table cell style for flags.
func (s Styles) CellFor(f component.StateFlags) lipgloss.Style {
	if s.table == nil {
		return s.TableCell.Copy()
	}
	return surfaceStyle(s.table.Resolve(f), s.Canvas).Padding(0, 1)
}

// SliderFillFor returns the slider fill color for flags.
func (s Styles) SliderFillFor(f component.StateFlags) string {
	if s.slider == nil {
		return s.SliderFill
	}
	return tokens.Flatten(s.slider.FillFor(f), s.Canvas)
}

// Dimensions returns the structural size the styles were built for.
func (s Styles) Dimensions() component.Dimensions {
	return s.size
}

// Box renders a surface as a bordered block sized from d.
func Box(surf component.Surface, d component.Dimensions, canvas string) lipgloss.Style {
	return surfaceStyle(surf, canvas).
		Border(Border(d)).
		BorderForeground(lipgloss.Color(tokens.Flatten(surf.Border, canvas))).
		Padding(padY(d), padX(d))
}

func surfaceStyle(surf component.Surface, canvas string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(tokens.Flatten(surf.Text, canvas))).
		Background(lipgloss.Color(tokens.Flatten(surf.Background, canvas)))
}

// Border picks a terminal border for d: thick for wide strokes, rounded for
// large radii.
func Border(d component.Dimensions) lipgloss.Border {
	switch {
	case d.BorderWidth > 1:
		return lipgloss.ThickBorder()
	case d.Radius >= 8:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// padX converts pixel padding to terminal cells, about six pixels a cell.
func padX(d component.Dimensions) int {
	return max(1, d.PaddingX/6)
}

// padY converts pixel padding to terminal rows, about ten pixels a row.
func padY(d component.Dimensions) int {
	return d.PaddingY / 10
}
