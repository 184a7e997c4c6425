package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// CardTokens are the tokens of a content card.
type CardTokens struct {
	Surface         `yaml:",inline"`
	Title           string        `yaml:"title" json:"title"`
	Subtitle        string        `yaml:"subtitle" json:"subtitle"`
	Divider         string        `yaml:"divider" json:"divider"`
	Shadow          string        `yaml:"shadow" json:"shadow"`
	HoverBackground string        `yaml:"hoverBackground" json:"hoverBackground"`
	HoverBorder     string        `yaml:"hoverBorder" json:"hoverBorder"`
	States          StateSurfaces `yaml:"states" json:"states"`
	Size            Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the surface for flags. Cards only react to disabled.
func (c *CardTokens) Resolve(f StateFlags) Surface {
	_, s := c.States.Resolve(c.Surface, f)
	return s
}

// Card generates card tokens. It returns nil when t is nil.
func Card(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *CardTokens {
	if t == nil {
		return nil
	}
	return newKit(t, mode, v).card(size)
}

func (k kit) card(size Size) *CardTokens {
	return &CardTokens{
		Surface: Surface{
			Background: k.fam.Bg,
			Border:     tokens.Mix(k.fam.Pure, k.fam.Bg, 0.6),
			Text:       k.fam.Text,
		},
		Title:           k.fam.Text,
		Subtitle:        k.fam.TextShade,
		Divider:         tokens.Mix(k.fam.Pure, k.fam.Bg, 0.8),
		Shadow:          k.shadow(),
		HoverBackground: k.fam.BgShade,
		HoverBorder:     k.fam.Pure,
		States: StateSurfaces{
			Disabled: k.disabledSurface(),
		},
		Size: DimensionsFor(size),
	}
}

// ProCardTokens extend a card with an accent, a glow and optional gradients.
type ProCardTokens struct {
	CardTokens `yaml:",inline"`
	Accent     string    `yaml:"accent" json:"accent"`
	AccentText string    `yaml:"accentText" json:"accentText"`
	Glow       string    `yaml:"glow" json:"glow"`
	Fill       *Gradient `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke     *Gradient `yaml:"stroke,omitempty" json:"stroke,omitempty"`
}

// ProCard generates tokens for the highlighted card. When opts requests a
// gradient the flat background is kept as the fallback under the fill.
func ProCard(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size, opts GradientOptions) *ProCardTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	fill, stroke := k.gradients(opts)
	pc := &ProCardTokens{
		CardTokens: *k.card(size),
		Accent:     k.fam.Pure,
		AccentText: k.fam.TextOpposite,
		Glow:       tokens.WithAlpha(k.fam.Pure, 0.25),
		Fill:       fill,
		Stroke:     stroke,
	}
	if fill != nil {
		// Text sits on the gradient, not on the pale tint.
		pc.Text = k.fam.TextOpposite
		pc.Title = k.fam.TextOpposite
	}
	if stroke != nil {
		pc.Border = stroke.First()
	}
	return pc
}
