package component

import "github.com/tungetti/hue/internal/tokens"

// GradientStop is one color stop; Offset is in [0,1].
type GradientStop struct {
	Offset float64 `yaml:"offset" json:"offset"`
	Color  string  `yaml:"color" json:"color"`
}

// Gradient is a linear gradient.
type Gradient struct {
	Angle int            `yaml:"angle" json:"angle"`
	Stops []GradientStop `yaml:"stops" json:"stops"`
}

// First returns the color at offset 0.
func (g *Gradient) First() string { return g.Stops[0].Color }

// Last returns the color at offset 1.
func (g *Gradient) Last() string { return g.Stops[len(g.Stops)-1].Color }

// Reversed returns a new gradient with the stop order reversed and offsets
// mirrored, so the color at 0 becomes the color at 1.
func (g *Gradient) Reversed() *Gradient {
	n := len(g.Stops)
	stops := make([]GradientStop, n)
	for i, s := range g.Stops {
		stops[n-1-i] = GradientStop{Offset: 1 - s.Offset, Color: s.Color}
	}
	return &Gradient{Angle: g.Angle, Stops: stops}
}

// GradientOptions are the per-instance gradient inputs of ProCard, Icon and
// LoadingLogo.
type GradientOptions struct {
	// Gradient fills the component with a gradient instead of a flat color.
	Gradient bool
	// InverseStroke paints the contour with the fill gradient reversed.
	InverseStroke bool
	// StrokeOnly drops the fill and keeps only the contour gradient.
	StrokeOnly bool
	// Angle in degrees; zero means the default diagonal.
	Angle int
}

const defaultGradientAngle = 135

// gradientSteps is the number of interpolated stops between the two ends.
// Interpolation runs in Lab space so the midpoint keeps its saturation.
const gradientSteps = 1

func (k kit) baseGradient(angle int) *Gradient {
	if angle == 0 {
		angle = defaultGradientAngle
	}
	from, to := k.fam.Pure, k.fam.Shade
	stops := []GradientStop{{Offset: 0, Color: from}}
	for i := 1; i <= gradientSteps; i++ {
		t := float64(i) / float64(gradientSteps+1)
		stops = append(stops, GradientStop{Offset: t, Color: tokens.MixLab(from, to, t)})
	}
	stops = append(stops, GradientStop{Offset: 1, Color: to})
	return &Gradient{Angle: angle, Stops: stops}
}

// gradients returns the fill and stroke gradients for opts. A fill alone
// has no stroke gradient and the flat border applies. InverseStroke adds a
// stroke that is the fill reversed, so the two never share a stop sequence.
// StrokeOnly keeps the stroke in pure-to-shade order and drops the fill.
func (k kit) gradients(opts GradientOptions) (fill, stroke *Gradient) {
	if !opts.Gradient && !opts.StrokeOnly {
		return nil, nil
	}
	base := k.baseGradient(opts.Angle)
	if opts.Gradient && !opts.StrokeOnly {
		fill = base
	}
	switch {
	case opts.InverseStroke:
		stroke = base.Reversed()
	case opts.StrokeOnly:
		stroke = base
	}
	return fill, stroke
}
