package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/hue/internal/ui/styles"
)

// StatusKind selects how a footer status is drawn.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// FooterModel shows a status line above the key help.
type FooterModel struct {
	help   help.Model
	keyMap help.KeyMap
	status string
	kind   StatusKind
	width  int
	styles styles.Styles
}

// NewFooter creates a footer showing help for keyMap.
func NewFooter(s styles.Styles, keyMap help.KeyMap) FooterModel {
	m := FooterModel{help: help.New(), keyMap: keyMap}
	m.SetStyles(s)
	return m
}

// View renders the status line and help.
func (m FooterModel) View() string {
	var parts []string
	if m.status != "" {
		st := m.styles.Status
		if m.kind == StatusError {
			st = m.styles.Error
		}
		parts = append(parts, st.Render("● ")+m.styles.App.Render(m.status))
	}
	if m.keyMap != nil {
		h := m.help
		h.Width = m.width
		parts = append(parts, h.View(m.keyMap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetStatus sets the status line.
func (m *FooterModel) SetStatus(status string, kind StatusKind) {
	m.status = status
	m.kind = kind
}

// ClearStatus removes the status line.
func (m *FooterModel) ClearStatus() {
	m.status = ""
	m.kind = StatusInfo
}

// Status returns the status text and kind.
func (m FooterModel) Status() (string, StatusKind) {
	return m.status, m.kind
}

// ToggleFullHelp switches between short and full help.
func (m *FooterModel) ToggleFullHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// IsFullHelpShown reports whether full help is shown.
func (m FooterModel) IsFullHelpShown() bool {
	return m.help.ShowAll
}

// SetStyles recolors the help and status.
func (m *FooterModel) SetStyles(s styles.Styles) {
	m.styles = s
	m.help.Styles.ShortKey = s.Status
	m.help.Styles.FullKey = s.Status
	m.help.Styles.ShortDesc = s.Help
	m.help.Styles.FullDesc = s.Help
	m.help.Styles.ShortSeparator = s.Muted
	m.help.Styles.FullSeparator = s.Muted
	m.help.Styles.Ellipsis = s.Muted
}

// SetWidth sets the help wrap width.
func (m *FooterModel) SetWidth(width int) {
	m.width = width
}
