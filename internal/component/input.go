package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// InputTokens are the tokens of a single-line text input.
type InputTokens struct {
	Surface     `yaml:",inline"`
	Label       string        `yaml:"label" json:"label"`
	Helper      string        `yaml:"helper" json:"helper"`
	HoverBorder string        `yaml:"hoverBorder" json:"hoverBorder"`
	FocusBorder string        `yaml:"focusBorder" json:"focusBorder"`
	FocusRing   string        `yaml:"focusRing" json:"focusRing"`
	Caret       string        `yaml:"caret" json:"caret"`
	Selection   string        `yaml:"selection" json:"selection"`
	States      StateSurfaces `yaml:"states" json:"states"`
	Size        Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the surface for flags.
func (in *InputTokens) Resolve(f StateFlags) Surface {
	_, s := in.States.Resolve(in.Surface, f)
	return s
}

// Input generates input tokens. It returns nil when t is nil.
func Input(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *InputTokens {
	if t == nil {
		return nil
	}
	return newKit(t, mode, v).input(size)
}

func (k kit) input(size Size) *InputTokens {
	return &InputTokens{
		Surface: Surface{
			Background:  k.field(),
			Border:      k.restingBorder(),
			Text:        k.neutral.Text,
			Placeholder: k.neutral.TextShade,
		},
		Label:       k.neutral.Text,
		Helper:      k.neutral.TextShade,
		HoverBorder: k.fam.BgShade,
		FocusBorder: k.fam.Pure,
		FocusRing:   k.focusRing(),
		Caret:       k.fam.Pure,
		Selection:   tokens.WithAlpha(k.fam.Pure, 0.25),
		States:      k.allStates(),
		Size:        DimensionsFor(size),
	}
}

// TextareaTokens extend input tokens with scroll, resize and counter colors.
type TextareaTokens struct {
	InputTokens    `yaml:",inline"`
	ScrollbarThumb string `yaml:"scrollbarThumb" json:"scrollbarThumb"`
	ScrollbarTrack string `yaml:"scrollbarTrack" json:"scrollbarTrack"`
	ResizeHandle   string `yaml:"resizeHandle" json:"resizeHandle"`
	Counter        string `yaml:"counter" json:"counter"`
	CounterLimit   string `yaml:"counterLimit" json:"counterLimit"`
	MinHeight      int    `yaml:"minHeight" json:"minHeight"`
}

// Textarea generates textarea tokens. It returns nil when t is nil.
func Textarea(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *TextareaTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	in := k.input(size)
	return &TextareaTokens{
		InputTokens:    *in,
		ScrollbarThumb: k.neutral.BgShade,
		ScrollbarTrack: k.neutral.Bg,
		ResizeHandle:   k.neutral.TextShade,
		Counter:        k.neutral.TextShade,
		CounterLimit:   k.danger.Pure,
		MinHeight:      in.Size.Height * 3,
	}
}
