package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/tokens"
	"github.com/tungetti/hue/internal/ui/components"
	"github.com/tungetti/hue/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	body := m.spinner.View()
	if m.snap.Ready() {
		switch m.Section() {
		case SectionInputs:
			body = m.viewInputs()
		case SectionSurfaces:
			body = m.viewSurfaces()
		case SectionFeedback:
			body = m.viewFeedback()
		case SectionGenerators:
			body = m.viewGenerators()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.navbar.View(),
		"",
		body,
		"",
		m.viewFlags(),
		m.footer.View(),
	)
}

func (m Model) viewFlags() string {
	s := m.styles
	names := []string{"disabled", "read-only", "error", "success", "editing"}
	on := []bool{m.flags.Disabled, m.flags.ReadOnly, m.flags.Error, m.flags.Success, m.flags.Editing}
	parts := make([]string, len(names))
	for i, n := range names {
		if on[i] {
			parts[i] = s.Status.Render(fmt.Sprintf("%d:%s", i+1, n))
		} else {
			parts[i] = s.Muted.Render(fmt.Sprintf("%d:%s", i+1, n))
		}
	}
	return strings.Join(parts, "  ") + s.Muted.Render("  → ") + s.App.Render(m.styles.InputState(m.flags).String())
}

func (m Model) viewInputs() string {
	s := m.styles

	field := s.InputFor(m.flags).Width(32).Render(s.InputHelper.Render("you@example.com"))
	input := lipgloss.JoinVertical(lipgloss.Left,
		s.InputLabel.Render("Email"),
		field,
		s.InputHelper.Render("state: "+s.InputState(m.flags).String()),
	)

	checks := lipgloss.JoinHorizontal(lipgloss.Top,
		s.CheckChecked.Render(" ✓ "), " ", s.CheckLabel.Render("Subscribe"), "   ",
		s.Check.Render(" ○ "), " ", s.CheckLabel.Render("Remember me"),
	)

	slider := lipgloss.JoinVertical(lipgloss.Left,
		s.InputLabel.Render("Volume"),
		m.slider.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, input, "", checks, "", slider)
}

func (m Model) viewSurfaces() string {
	s := m.styles

	card := components.NewPanel(s, "Card", 34)
	card.SetSubtitle("resting surface")
	card.SetContent("Surfaces pick one state at a time.")

	pro := components.NewProPanel(s, "Pro card", 34)
	pro.SetSubtitle("accent and gradient")

	dialog := s.Dialog.Copy().Width(34).Render(lipgloss.JoinVertical(lipgloss.Left,
		s.DialogHeader.Render(" Confirm ")+" "+s.DialogClose.Render("×"),
		"",
		"Apply the new scheme?",
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, card.View(), " ", pro.View()),
		dialog,
	)
}

func (m Model) viewFeedback() string {
	s := m.styles

	header := s.TableHeader.Render(fmt.Sprintf("%-10s", "scheme")) + s.TableHeader.Render(fmt.Sprintf("%-8s", "mode"))
	rows := []string{header}
	for i, row := range [][2]string{{"blue", "light"}, {"green", "dark"}, {"orange", "light"}} {
		st := s.TableCell
		switch {
		case row[0] == string(m.snap.ColorScheme):
			st = s.TableSelected
		case i%2 == 1:
			st = s.TableCellAlt
		}
		if m.flags != (component.StateFlags{}) {
			st = s.CellFor(m.flags)
		}
		rows = append(rows, st.Render(fmt.Sprintf("%-10s", row[0]))+st.Render(fmt.Sprintf("%-8s", row[1])))
	}

	icon := s.Icon.Render("◆")
	if s.IconStroke != nil {
		icon += " " + styles.GradientBar(s.IconStroke, 12)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		icon,
		"",
		m.spinner.View(),
	)
}

// viewGenerators lists every registered generator with the surface it
// resolves for the current flags.
func (m Model) viewGenerators() string {
	s := m.styles
	a := m.args()
	lines := make([]string, 0, len(component.Names()))
	for _, name := range component.Names() {
		out, err := component.Generate(name, a)
		if err != nil {
			lines = append(lines, s.Error.Render(fmt.Sprintf("%-12s %v", name, err)))
			continue
		}
		surf := out.Resolve(m.flags)
		chip := lipgloss.NewStyle().
			Foreground(lipgloss.Color(tokens.Flatten(surf.Text, s.Canvas))).
			Background(lipgloss.Color(tokens.Flatten(surf.Background, s.Canvas))).
			Padding(0, 1).
			Render("Aa")
		border := lipgloss.NewStyle().
			Foreground(lipgloss.Color(tokens.Flatten(surf.Border, s.Canvas))).
			Render("▌")
		lines = append(lines, fmt.Sprintf("%s %s%s %s", s.App.Render(fmt.Sprintf("%-12s", name)), border, chip,
			s.Muted.Render(surf.Background+" "+surf.Border+" "+surf.Text)))
	}
	return strings.Join(lines, "\n")
}
