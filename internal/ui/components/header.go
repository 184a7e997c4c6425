package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/hue/internal/ui/styles"
)

// NavbarModel is the top bar: a brand on the left, navigation items with one
// active item, and a right-aligned status such as the current scheme.
type NavbarModel struct {
	brand  string
	items  []string
	active int
	right  string
	width  int
	styles styles.Styles
}

// NewNavbar creates a navbar with the first item active.
func NewNavbar(s styles.Styles, brand string, items ...string) NavbarModel {
	return NavbarModel{brand: brand, items: items, styles: s}
}

// View renders the bar.
func (m NavbarModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.NavBrand.Render(m.brand))
	for i, item := range m.items {
		b.WriteString(" ")
		if i == m.active {
			b.WriteString(m.styles.NavItemActive.Render(item))
		} else {
			b.WriteString(m.styles.NavItem.Render(item))
		}
	}
	left := b.String()

	bar := m.styles.Navbar.Copy()
	if m.width <= 0 {
		if m.right == "" {
			return bar.Render(left)
		}
		return bar.Render(left + "  " + m.styles.Muted.Render(m.right))
	}

	right := m.styles.Muted.Render(m.right)
	gap := m.width - bar.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return bar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// Next activates the following item, wrapping around.
func (m *NavbarModel) Next() {
	if len(m.items) > 0 {
		m.active = (m.active + 1) % len(m.items)
	}
}

// Prev activates the preceding item, wrapping around.
func (m *NavbarModel) Prev() {
	if len(m.items) > 0 {
		m.active = (m.active - 1 + len(m.items)) % len(m.items)
	}
}

// Active returns the index of the active item.
func (m NavbarModel) Active() int {
	return m.active
}

// ActiveItem returns the label of the active item, or "" with no items.
func (m NavbarModel) ActiveItem() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.active]
}

// SetRight sets the right-aligned text.
func (m *NavbarModel) SetRight(s string) {
	m.right = s
}

// SetStyles recolors the bar.
func (m *NavbarModel) SetStyles(s styles.Styles) {
	m.styles = s
}

// SetWidth resizes the bar.
func (m *NavbarModel) SetWidth(width int) {
	m.width = width
}
