package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// DialogTokens are the tokens of a modal dialog.
type DialogTokens struct {
	Surface          `yaml:",inline"`
	Overlay          string     `yaml:"overlay" json:"overlay"`
	HeaderBackground string     `yaml:"headerBackground" json:"headerBackground"`
	Title            string     `yaml:"title" json:"title"`
	FooterBackground string     `yaml:"footerBackground" json:"footerBackground"`
	Divider          string     `yaml:"divider" json:"divider"`
	CloseIcon        string     `yaml:"closeIcon" json:"closeIcon"`
	CloseIconHover   string     `yaml:"closeIconHover" json:"closeIconHover"`
	Accent           string     `yaml:"accent" json:"accent"`
	Shadow           string     `yaml:"shadow" json:"shadow"`
	Size             Dimensions `yaml:"size" json:"size"`
}

// Resolve returns the resting surface; dialogs have no states.
func (d *DialogTokens) Resolve(StateFlags) Surface {
	return d.Surface
}

// Dialog generates dialog tokens. It returns nil when t is nil.
func Dialog(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *DialogTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	overlay := tokens.WithAlpha("#0f172a", 0.45)
	if k.mode.IsDark() {
		overlay = tokens.WithAlpha("#000000", 0.65)
	}
	return &DialogTokens{
		Surface: Surface{
			Background: k.canvas,
			Border:     k.neutral.BgShade,
			Text:       k.neutral.Text,
		},
		Overlay:          overlay,
		HeaderBackground: k.fam.Bg,
		Title:            k.fam.Text,
		FooterBackground: k.neutral.Bg,
		Divider:          k.neutral.BgShade,
		CloseIcon:        k.neutral.TextShade,
		CloseIconHover:   k.danger.Pure,
		Accent:           k.fam.Pure,
		Shadow:           k.shadow(),
		Size:             DimensionsFor(size),
	}
}
