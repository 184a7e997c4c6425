package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// CheckTokens are the tokens of a checkbox. The embedded surface is the
// unchecked box.
type CheckTokens struct {
	Surface                 `yaml:",inline"`
	CheckedBackground       string        `yaml:"checkedBackground" json:"checkedBackground"`
	CheckedBorder           string        `yaml:"checkedBorder" json:"checkedBorder"`
	Mark                    string        `yaml:"mark" json:"mark"`
	IndeterminateBackground string        `yaml:"indeterminateBackground" json:"indeterminateBackground"`
	IndeterminateMark       string        `yaml:"indeterminateMark" json:"indeterminateMark"`
	HoverBorder             string        `yaml:"hoverBorder" json:"hoverBorder"`
	FocusRing               string        `yaml:"focusRing" json:"focusRing"`
	Label                   string        `yaml:"label" json:"label"`
	States                  StateSurfaces `yaml:"states" json:"states"`
	BoxSize                 int           `yaml:"boxSize" json:"boxSize"`
	Size                    Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the surface for flags. Checks have no editing state.
func (c *CheckTokens) Resolve(f StateFlags) Surface {
	_, s := c.States.Resolve(c.Surface, f)
	return s
}

// Check generates checkbox tokens. It returns nil when t is nil.
func Check(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *CheckTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	dims := DimensionsFor(size)
	return &CheckTokens{
		Surface: Surface{
			Background: tokens.Mix(k.fam.Bg, k.canvas, 0.7),
			Border:     k.restingBorder(),
			Text:       k.neutral.Text,
		},
		CheckedBackground:       k.fam.Pure,
		CheckedBorder:           k.fam.Shade,
		Mark:                    k.fam.TextOpposite,
		IndeterminateBackground: k.fam.BgShade,
		IndeterminateMark:       k.fam.Pure,
		HoverBorder:             k.fam.Pure,
		FocusRing:               k.focusRing(),
		Label:                   k.neutral.Text,
		States: StateSurfaces{
			Disabled: k.disabledSurface(),
			ReadOnly: k.readOnlySurface(),
			Error:    k.errorSurface(),
			Success:  k.successSurface(),
		},
		BoxSize: dims.IconSize,
		Size:    dims,
	}
}
