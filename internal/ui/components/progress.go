package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/ui/styles"
)

// SliderModel renders slider tokens as a bubbles progress bar. The fill
// follows the slider's resolved state; with a gradient the bar is painted
// from the gradient's first to last stop.
type SliderModel struct {
	bar    progress.Model
	value  float64
	width  int
	flags  component.StateFlags
	styles styles.Styles
}

// NewSlider creates a slider bar of the given width at value zero.
func NewSlider(s styles.Styles, width int) SliderModel {
	m := SliderModel{width: width, styles: s}
	m.rebuild()
	return m
}

func (m *SliderModel) rebuild() {
	opts := []progress.Option{progress.WithWidth(m.width), progress.WithoutPercentage()}
	fill := m.styles.SliderFillFor(m.flags)
	if g := m.styles.ProFill; g != nil && fill == m.styles.SliderFill {
		opts = append(opts, progress.WithGradient(g.First(), g.Last()))
	} else {
		opts = append(opts, progress.WithSolidFill(fill))
	}
	m.bar = progress.New(opts...)
	m.bar.EmptyColor = m.styles.SliderTrack
}

// View renders the bar and its value.
func (m SliderModel) View() string {
	return m.bar.ViewAs(m.value) + m.styles.Muted.Render(fmt.Sprintf(" %3.0f%%", m.value*100))
}

// SetValue sets the value, clamped to [0,1].
func (m *SliderModel) SetValue(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	m.value = v
}

// Step moves the value by delta. Disabled and read-only sliders do not move.
func (m *SliderModel) Step(delta float64) {
	if m.flags.Disabled || m.flags.ReadOnly {
		return
	}
	m.SetValue(m.value + delta)
}

// Value returns the current value in [0,1].
func (m SliderModel) Value() float64 {
	return m.value
}

// SetFlags updates the state inputs and recolors the fill.
func (m *SliderModel) SetFlags(f component.StateFlags) {
	m.flags = f
	m.rebuild()
}

// SetStyles recolors the bar.
func (m *SliderModel) SetStyles(s styles.Styles) {
	m.styles = s
	m.rebuild()
}

// SetWidth resizes the bar.
func (m *SliderModel) SetWidth(width int) {
	m.width = width
	m.bar.Width = width
}

// FillColor returns the solid fill color in use.
func (m SliderModel) FillColor() string {
	return m.bar.FullColor
}
