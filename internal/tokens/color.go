package tokens

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// parseHex parses a #rrggbb string. Malformed input yields black; every
// caller in this module passes values produced by this package.
func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toHex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// Mix blends a toward b in RGB space; t=0 returns a, t=1 returns b.
func Mix(a, b string, t float64) string {
	return toHex(parseHex(a).BlendRgb(parseHex(b), t))
}

// MixLab blends a toward b in CIE-L*a*b*, which keeps midpoints from going
// muddy between distant hues. Used for gradient interpolation.
func MixLab(a, b string, t float64) string {
	return toHex(parseHex(a).BlendLab(parseHex(b), t))
}

// WithAlpha appends an alpha channel to a #rrggbb color, producing #rrggbbaa.
func WithAlpha(hex string, alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))
	return fmt.Sprintf("%s%02x", toHex(parseHex(hex)), int(math.Round(alpha*255)))
}

// Flatten composites a #rrggbbaa color over an opaque background and returns
// the #rrggbb result. Opaque colors are returned unchanged. Terminals have no
// alpha channel.
func Flatten(hex, over string) string {
	if len(hex) != 9 {
		return hex
	}
	a, err := strconv.ParseUint(hex[7:], 16, 8)
	if err != nil {
		return hex[:7]
	}
	return Mix(over, hex[:7], float64(a)/255)
}

// Lightness returns the HSL lightness of a color in [0,1].
func Lightness(hex string) float64 {
	_, _, l := parseHex(hex).Hsl()
	return l
}

// Distance returns the CIE-L*a*b* distance between two colors. Identical
// colors are 0; black to white is about 1.
func Distance(a, b string) float64 {
	return parseHex(a).DistanceLab(parseHex(b))
}

// ValidHex reports whether s is a #rrggbb color.
func ValidHex(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}
