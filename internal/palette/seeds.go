package palette

// HSL is a seed color: hue in degrees [0,360), saturation and lightness in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// Canvas colors per mode. Backgrounds are blended toward these.
const (
	CanvasLight = "#ffffff"
	CanvasDark  = "#0b0f19"
)

// Ink colors used for text placed directly on saturated fills.
const (
	InkLight = "#ffffff"
	InkDark  = "#0f172a"
)

// darkLift raises seed lightness in dark mode so saturated colors keep their
// weight against a near-black canvas.
const darkLift = 0.08

// schemeSeeds holds the scheme-dependent families.
var schemeSeeds = map[ColorScheme]map[ColorFamily]HSL{
	SchemeBlue: {
		FamilyPrimary:   {H: 217, S: 0.91, L: 0.50},
		FamilySecondary: {H: 199, S: 0.89, L: 0.45},
		FamilyTertiary:  {H: 243, S: 0.75, L: 0.59},
		FamilyAccent:    {H: 271, S: 0.81, L: 0.56},
		FamilyNeutral:   {H: 215, S: 0.16, L: 0.47},
	},
	SchemeGreen: {
		FamilyPrimary:   {H: 152, S: 0.76, L: 0.36},
		FamilySecondary: {H: 173, S: 0.80, L: 0.35},
		FamilyTertiary:  {H: 84, S: 0.81, L: 0.40},
		FamilyAccent:    {H: 199, S: 0.89, L: 0.45},
		FamilyNeutral:   {H: 160, S: 0.10, L: 0.45},
	},
	SchemeOrange: {
		FamilyPrimary:   {H: 25, S: 0.95, L: 0.53},
		FamilySecondary: {H: 38, S: 0.92, L: 0.50},
		FamilyTertiary:  {H: 350, S: 0.89, L: 0.60},
		FamilyAccent:    {H: 330, S: 0.81, L: 0.60},
		FamilyNeutral:   {H: 25, S: 0.08, L: 0.46},
	},
}

// fixedSeeds holds the families whose hue never follows the scheme.
var fixedSeeds = map[ColorFamily]HSL{
	FamilySuccess: {H: 142, S: 0.71, L: 0.40},
	FamilyWarning: {H: 38, S: 0.92, L: 0.50},
	FamilyDanger:  {H: 0, S: 0.84, L: 0.55},
}

// Seed returns the pure color seed of family for the scheme and mode. The
// white family has no seed; ok is false for it and for invalid inputs.
func Seed(scheme ColorScheme, mode Mode, family ColorFamily) (HSL, bool) {
	if !scheme.Valid() || !mode.Valid() {
		return HSL{}, false
	}
	seed, ok := fixedSeeds[family]
	if !ok {
		seed, ok = schemeSeeds[scheme][family]
	}
	if !ok {
		return HSL{}, false
	}
	if mode.IsDark() {
		seed.L = clamp01(seed.L + darkLift)
	}
	return seed, true
}

// Canvas returns the page background of mode.
func Canvas(mode Mode) string {
	if mode.IsDark() {
		return CanvasDark
	}
	return CanvasLight
}

// WhiteTable is the literal white family for mode, keyed by variant name.
func WhiteTable(mode Mode) map[string]string {
	if mode.IsDark() {
		return map[string]string{
			"pure":         "#ffffff",
			"text":         "#f8fafc",
			"textShade":    "#cbd5e1",
			"textOpposite": InkDark,
			"bg":           "#1e293b",
			"bgShade":      "#334155",
			"shade":        "#e2e8f0",
		}
	}
	return map[string]string{
		"pure":         "#ffffff",
		"text":         "#0f172a",
		"textShade":    "#475569",
		"textOpposite": InkDark,
		"bg":           "#cbd5e1",
		"bgShade":      "#b6c2d1",
		"shade":        "#f1f5f9",
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
