package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// SliderTokens are the tokens of a range slider. The embedded surface is the
// unfilled track.
type SliderTokens struct {
	Surface         `yaml:",inline"`
	Fill            string        `yaml:"fill" json:"fill"`
	DisabledFill    string        `yaml:"disabledFill" json:"disabledFill"`
	Thumb           string        `yaml:"thumb" json:"thumb"`
	ThumbBorder     string        `yaml:"thumbBorder" json:"thumbBorder"`
	ThumbHover      string        `yaml:"thumbHover" json:"thumbHover"`
	FocusRing       string        `yaml:"focusRing" json:"focusRing"`
	Mark            string        `yaml:"mark" json:"mark"`
	ValueBackground string        `yaml:"valueBackground" json:"valueBackground"`
	ValueText       string        `yaml:"valueText" json:"valueText"`
	States          StateSurfaces `yaml:"states" json:"states"`
	TrackHeight     int           `yaml:"trackHeight" json:"trackHeight"`
	ThumbSize       int           `yaml:"thumbSize" json:"thumbSize"`
	Size            Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the track surface for flags.
func (s *SliderTokens) Resolve(f StateFlags) Surface {
	_, sf := s.States.Resolve(s.Surface, f)
	return sf
}

// FillFor returns the fill color for flags: disabled sliders lose their
// family color, errored ones turn to the danger color.
func (s *SliderTokens) FillFor(f StateFlags) string {
	switch state, sf := s.States.Resolve(s.Surface, f); state {
	case StateDisabled:
		return s.DisabledFill
	case StateError:
		return sf.Border
	default:
		return s.Fill
	}
}

// Slider generates slider tokens. It returns nil when t is nil.
func Slider(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *SliderTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	dims := DimensionsFor(size)
	return &SliderTokens{
		Surface: Surface{
			Background: k.neutral.BgShade,
			Border:     k.neutral.BgShade,
			Text:       k.neutral.Text,
		},
		Fill:            k.fam.Pure,
		DisabledFill:    k.neutral.TextShade,
		Thumb:           k.canvas,
		ThumbBorder:     k.fam.Pure,
		ThumbHover:      k.fam.Shade,
		FocusRing:       k.focusRing(),
		Mark:            k.neutral.TextShade,
		ValueBackground: k.fam.Pure,
		ValueText:       k.fam.TextOpposite,
		States: StateSurfaces{
			Disabled: k.disabledSurface(),
			ReadOnly: k.readOnlySurface(),
			Error:    k.errorSurface(),
		},
		TrackHeight: dims.BorderWidth * 4,
		ThumbSize:   dims.IconSize,
		Size:        dims,
	}
}
