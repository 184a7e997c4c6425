package component

import "strings"

// Size selects a row of the structural table.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// DefaultSize is used for the zero value and unknown sizes.
const DefaultSize = SizeMD

// Sizes returns every size, smallest first.
func Sizes() []Size {
	return []Size{SizeXS, SizeSM, SizeMD, SizeLG, SizeXL}
}

// ParseSize parses a size name. The empty string is the default size.
func ParseSize(s string) (Size, bool) {
	v := Size(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return DefaultSize, true
	}
	if _, ok := sizeTable[v]; ok {
		return v, true
	}
	return "", false
}

// Smaller and Larger step through the table, stopping at either end.
func (s Size) Smaller() Size { return s.step(-1) }
func (s Size) Larger() Size  { return s.step(1) }

func (s Size) step(d int) Size {
	all := Sizes()
	for i, v := range all {
		if v == s {
			j := i + d
			if j < 0 || j >= len(all) {
				return s
			}
			return all[j]
		}
	}
	return DefaultSize
}

// Dimensions are the structural tokens of a size, in pixels. They never
// depend on color and colors never depend on them.
type Dimensions struct {
	Height      int `yaml:"height" json:"height"`
	PaddingX    int `yaml:"paddingX" json:"paddingX"`
	PaddingY    int `yaml:"paddingY" json:"paddingY"`
	FontSize    int `yaml:"fontSize" json:"fontSize"`
	BorderWidth int `yaml:"borderWidth" json:"borderWidth"`
	Radius      int `yaml:"radius" json:"radius"`
	IconSize    int `yaml:"iconSize" json:"iconSize"`
	Gap         int `yaml:"gap" json:"gap"`
}

var sizeTable = map[Size]Dimensions{
	SizeXS: {Height: 24, PaddingX: 6, PaddingY: 2, FontSize: 11, BorderWidth: 1, Radius: 4, IconSize: 12, Gap: 4},
	SizeSM: {Height: 32, PaddingX: 10, PaddingY: 4, FontSize: 13, BorderWidth: 1, Radius: 6, IconSize: 16, Gap: 6},
	SizeMD: {Height: 40, PaddingX: 12, PaddingY: 8, FontSize: 14, BorderWidth: 1, Radius: 8, IconSize: 20, Gap: 8},
	SizeLG: {Height: 48, PaddingX: 16, PaddingY: 10, FontSize: 16, BorderWidth: 2, Radius: 10, IconSize: 24, Gap: 10},
	SizeXL: {Height: 56, PaddingX: 20, PaddingY: 12, FontSize: 18, BorderWidth: 2, Radius: 12, IconSize: 32, Gap: 12},
}

// DimensionsFor returns the structural tokens of s; unknown sizes use md.
func DimensionsFor(s Size) Dimensions {
	if d, ok := sizeTable[s]; ok {
		return d
	}
	return sizeTable[DefaultSize]
}
