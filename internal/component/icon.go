package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// IconTokens are the tokens of a glyph inside an optional badge.
type IconTokens struct {
	Surface    `yaml:",inline"`
	Foreground string        `yaml:"foreground" json:"foreground"`
	Hover      string        `yaml:"hover" json:"hover"`
	Muted      string        `yaml:"muted" json:"muted"`
	Fill       *Gradient     `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke     *Gradient     `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	States     StateSurfaces `yaml:"states" json:"states"`
	Dimension  int           `yaml:"dimension" json:"dimension"`
	Size       Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the badge surface for flags.
func (i *IconTokens) Resolve(f StateFlags) Surface {
	_, s := i.States.Resolve(i.Surface, f)
	return s
}

// Icon generates icon tokens. It returns nil when t is nil.
func Icon(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size, opts GradientOptions) *IconTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	fill, stroke := k.gradients(opts)
	dims := DimensionsFor(size)
	ic := &IconTokens{
		Surface: Surface{
			Background: k.fam.Bg,
			Border:     k.fam.Bg,
			Text:       k.fam.Pure,
		},
		Foreground: k.fam.Pure,
		Hover:      k.fam.Shade,
		Muted:      k.neutral.TextShade,
		Fill:       fill,
		Stroke:     stroke,
		States: StateSurfaces{
			Disabled: k.disabledSurface(),
		},
		Dimension: dims.IconSize,
		Size:      dims,
	}
	if fill != nil {
		ic.Foreground = k.fam.TextOpposite
		ic.Text = k.fam.TextOpposite
	}
	if stroke != nil {
		ic.Border = stroke.First()
	}
	return ic
}
