package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// LoadingLogoTokens are the tokens of the animated loading mark.
type LoadingLogoTokens struct {
	Surface   `yaml:",inline"`
	Primary   string     `yaml:"primary" json:"primary"`
	Secondary string     `yaml:"secondary" json:"secondary"`
	Track     string     `yaml:"track" json:"track"`
	Glow      string     `yaml:"glow" json:"glow"`
	Fill      *Gradient  `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke    *Gradient  `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Diameter  int        `yaml:"diameter" json:"diameter"`
	Size      Dimensions `yaml:"size" json:"size"`
}

// Resolve returns the resting surface; the logo has no states.
func (l *LoadingLogoTokens) Resolve(StateFlags) Surface {
	return l.Surface
}

// LoadingLogo generates loading logo tokens. It returns nil when t is nil.
func LoadingLogo(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size, opts GradientOptions) *LoadingLogoTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	fill, stroke := k.gradients(opts)
	dims := DimensionsFor(size)
	l := &LoadingLogoTokens{
		Surface: Surface{
			Background: k.canvas,
			Border:     k.fam.BgShade,
			Text:       k.fam.Text,
		},
		Primary:   k.fam.Pure,
		Secondary: tokens.MixLab(k.fam.Pure, k.fam.Shade, 0.5),
		Track:     k.fam.Bg,
		Glow:      tokens.WithAlpha(k.fam.Pure, 0.3),
		Fill:      fill,
		Stroke:    stroke,
		Diameter:  dims.Height * 2,
		Size:      dims,
	}
	if stroke != nil {
		l.Border = stroke.First()
	}
	return l
}
