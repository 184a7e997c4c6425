package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// NavbarTokens are the tokens of a top navigation bar.
type NavbarTokens struct {
	Surface              `yaml:",inline"`
	Brand                string        `yaml:"brand" json:"brand"`
	Item                 string        `yaml:"item" json:"item"`
	ItemHover            string        `yaml:"itemHover" json:"itemHover"`
	ItemHoverBackground  string        `yaml:"itemHoverBackground" json:"itemHoverBackground"`
	ItemActive           string        `yaml:"itemActive" json:"itemActive"`
	ItemActiveBackground string        `yaml:"itemActiveBackground" json:"itemActiveBackground"`
	Indicator            string        `yaml:"indicator" json:"indicator"`
	States               StateSurfaces `yaml:"states" json:"states"`
	Size                 Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the bar surface for flags.
func (n *NavbarTokens) Resolve(f StateFlags) Surface {
	_, s := n.States.Resolve(n.Surface, f)
	return s
}

// Navbar generates navbar tokens. It returns nil when t is nil.
func Navbar(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *NavbarTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	return &NavbarTokens{
		Surface: Surface{
			Background: k.canvas,
			Border:     k.neutral.BgShade,
			Text:       k.neutral.Text,
		},
		Brand:                k.fam.Pure,
		Item:                 k.neutral.TextShade,
		ItemHover:            k.fam.Text,
		ItemHoverBackground:  k.fam.Bg,
		ItemActive:           k.fam.Pure,
		ItemActiveBackground: k.fam.BgShade,
		Indicator:            k.fam.Pure,
		States: StateSurfaces{
			Disabled: k.disabledSurface(),
		},
		Size: DimensionsFor(size),
	}
}
