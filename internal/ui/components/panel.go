package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/hue/internal/ui/styles"
)

// PanelModel is a card: a bordered block with a title, an optional subtitle
// and free content. A pro panel uses the pro card surface and shows its
// gradient along the top.
type PanelModel struct {
	title    string
	subtitle string
	content  string
	width    int
	pro      bool
	styles   styles.Styles
}

// NewPanel creates a card panel.
func NewPanel(s styles.Styles, title string, width int) PanelModel {
	return PanelModel{title: title, width: width, styles: s}
}

// NewProPanel creates a pro card panel.
func NewProPanel(s styles.Styles, title string, width int) PanelModel {
	return PanelModel{title: title, width: width, styles: s, pro: true}
}

// View renders the panel.
func (m PanelModel) View() string {
	box := m.styles.Card
	if m.pro {
		box = m.styles.ProCard
	}
	box = box.Copy()
	if m.width > 0 {
		box = box.Width(m.width)
	}

	var parts []string
	if m.pro && m.styles.ProFill != nil {
		parts = append(parts, styles.GradientBar(m.styles.ProFill, m.InnerWidth()))
	}
	if m.title != "" {
		title := m.styles.CardTitle.Render(m.title)
		if m.pro {
			title = m.styles.ProAccent.Render(" PRO ") + " " + title
		}
		parts = append(parts, title)
	}
	if m.subtitle != "" {
		parts = append(parts, m.styles.CardSubtitle.Render(m.subtitle))
	}
	if m.content != "" {
		parts = append(parts, "", m.content)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// InnerWidth returns the usable width inside the border and padding.
func (m PanelModel) InnerWidth() int {
	box := m.styles.Card
	w := m.width - box.GetHorizontalFrameSize()
	if w < 0 {
		return 0
	}
	return w
}

// SetContent replaces the panel content.
func (m *PanelModel) SetContent(content string) {
	m.content = content
}

// SetSubtitle sets the subtitle line.
func (m *PanelModel) SetSubtitle(subtitle string) {
	m.subtitle = subtitle
}

// SetStyles recolors the panel.
func (m *PanelModel) SetStyles(s styles.Styles) {
	m.styles = s
}

// SetWidth resizes the panel.
func (m *PanelModel) SetWidth(width int) {
	m.width = width
}

// Content returns the panel content.
func (m PanelModel) Content() string {
	return m.content
}
