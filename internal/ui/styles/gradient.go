package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/tokens"
)

// GradientBar renders g as a horizontal run of width block cells. Colors
// between stops are interpolated in Lab space. A nil gradient renders blanks.
func GradientBar(g *component.Gradient, width int) string {
	if width <= 0 {
		return ""
	}
	if g == nil || len(g.Stops) == 0 {
		return strings.Repeat(" ", width)
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAt(g, t))).Render("█"))
	}
	return b.String()
}

// ColorAt samples g at offset t in [0,1].
func ColorAt(g *component.Gradient, t float64) string {
	stops := g.Stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 || t == b.Offset {
				return b.Color
			}
			return tokens.MixLab(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}
