// Package components provides the reusable pieces of the preview TUI. Each
// wraps a charmbracelet/bubbles model and takes its colors from styles.Styles.
package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/hue/internal/ui/styles"
)

// SpinnerModel renders the loading logo as an animated spinner.
type SpinnerModel struct {
	spinner spinner.Model
	message string
	styles  styles.Styles
}

// NewSpinner creates a spinner colored with the loading logo's primary color.
func NewSpinner(s styles.Styles, message string) SpinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner
	return SpinnerModel{spinner: sp, message: message, styles: s}
}

// Init starts the animation.
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the animation on tick messages.
func (m SpinnerModel) Update(msg tea.Msg) (SpinnerModel, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the spinner frame followed by the message. When the logo has
// a fill gradient the message is drawn over a gradient bar.
func (m SpinnerModel) View() string {
	frame := m.spinner.View()
	if m.message == "" {
		return frame
	}
	if m.styles.LogoFill != nil {
		return frame + " " + m.styles.Muted.Render(m.message) + " " + styles.GradientBar(m.styles.LogoFill, 8)
	}
	return frame + " " + m.styles.Muted.Render(m.message)
}

// SetStyles recolors the spinner without restarting it.
func (m *SpinnerModel) SetStyles(s styles.Styles) {
	m.styles = s
	m.spinner.Style = s.Spinner
}

// SetMessage updates the message.
func (m *SpinnerModel) SetMessage(msg string) {
	m.message = msg
}

// Message returns the current message.
func (m SpinnerModel) Message() string {
	return m.message
}
