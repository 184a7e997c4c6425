package testing

import (
	"testing"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// Theme is one scheme and mode with its built tokens.
type Theme struct {
	Scheme palette.ColorScheme
	Mode   palette.Mode
	Tokens *tokens.AppColorTokens
}

// Name returns "scheme/mode", suitable as a subtest name.
func (th Theme) Name() string {
	return string(th.Scheme) + "/" + string(th.Mode)
}

// Args returns generator inputs for th with the given variant and size.
func (th Theme) Args(v component.Variant, s component.Size) component.Args {
	return component.Args{Tokens: th.Tokens, Mode: th.Mode, Variant: v, Size: s}
}

// AllThemes builds tokens for every scheme and mode.
func AllThemes(t testing.TB) []Theme {
	t.Helper()

	var out []Theme
	for _, s := range palette.Schemes() {
		for _, m := range palette.Modes() {
			tk, err := tokens.Build(s, m)
			if err != nil {
				t.Fatalf("building %s/%s: %v", s, m, err)
			}
			out = append(out, Theme{Scheme: s, Mode: m, Tokens: tk})
		}
	}
	return out
}

// ForEachTheme runs fn as a subtest for every scheme and mode.
func ForEachTheme(t *testing.T, fn func(t *testing.T, th Theme)) {
	t.Helper()

	for _, th := range AllThemes(t) {
		th := th
		t.Run(th.Name(), func(t *testing.T) {
			fn(t, th)
		})
	}
}

// BlueLight returns the default theme.
func BlueLight(t testing.TB) Theme {
	t.Helper()
	return Theme{Scheme: palette.SchemeBlue, Mode: palette.ModeLight, Tokens: tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)}
}

// AllFlags returns every combination of state flags.
func AllFlags() []component.StateFlags {
	out := make([]component.StateFlags, 0, 32)
	for i := 0; i < 32; i++ {
		out = append(out, component.StateFlags{
			Disabled: i&1 != 0,
			ReadOnly: i&2 != 0,
			Error:    i&4 != 0,
			Success:  i&8 != 0,
			Editing:  i&16 != 0,
		})
	}
	return out
}

// PreferenceYAML returns the on-disk form of a preference.
func PreferenceYAML(scheme, mode string) string {
	return "color_scheme: " + scheme + "\nmode: " + mode + "\n"
}
