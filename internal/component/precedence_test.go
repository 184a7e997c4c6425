package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/hue/internal/component"
	hutesting "github.com/tungetti/hue/internal/testing"
)

// stateful pairs a generator's output with its resting surface and overrides.
type stateful struct {
	name string
	gen  func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces)
}

func statefulGenerators() []stateful {
	return []stateful{
		{"input", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Input(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
		{"textarea", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Textarea(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
		{"tableCell", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.TableCell(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
		{"check", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Check(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
		{"slider", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Slider(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
		{"card", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Card(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
		{"icon", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Icon(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient)
			return tk, tk.Surface, tk.States
		}},
		{"navbar", func(a component.Args) (component.Stateful, component.Surface, component.StateSurfaces) {
			tk := component.Navbar(a.Tokens, a.Mode, a.Variant, a.Size)
			return tk, tk.Surface, tk.States
		}},
	}
}

// winner walks the precedence order and returns the first raised flag the
// component has a surface for.
func winner(base component.Surface, s component.StateSurfaces, f component.StateFlags) (component.State, component.Surface) {
	order := []struct {
		raised bool
		surf   *component.Surface
		state  component.State
	}{
		{f.Disabled, s.Disabled, component.StateDisabled},
		{f.ReadOnly, s.ReadOnly, component.StateReadOnly},
		{f.Error, s.Error, component.StateError},
		{f.Success, s.Success, component.StateSuccess},
		{f.Editing, s.Editing, component.StateEditing},
	}
	for _, o := range order {
		if o.raised && o.surf != nil {
			return o.state, *o.surf
		}
	}
	return component.StateDefault, base
}

// =============================================================================
// Precedence over every generator, theme and flag combination
// =============================================================================

func TestGenerators_ResolveHighestPrecedence(t *testing.T) {
	themes := hutesting.AllThemes(t)
	flags := hutesting.AllFlags()
	require.Len(t, flags, 32)

	for _, g := range statefulGenerators() {
		g := g
		t.Run(g.name, func(t *testing.T) {
			for _, th := range themes {
				tk, base, states := g.gen(th.Args(component.VariantPrimary, component.SizeMD))
				require.NotNil(t, tk, th.Name())

				for _, f := range flags {
					wantState, wantSurface := winner(base, states, f)

					gotState, _ := states.Resolve(base, f)
					assert.Equal(t, wantState, gotState, "%s %+v", th.Name(), f)

					got := tk.Resolve(f)
					assert.Equal(t, wantSurface, got, "%s %+v", th.Name(), f)
					hutesting.AssertHex(t, got.Background, "%s %+v background", th.Name(), f)
					hutesting.AssertHex(t, got.Border, "%s %+v border", th.Name(), f)
					hutesting.AssertHex(t, got.Text, "%s %+v text", th.Name(), f)
				}
			}
		})
	}
}

func TestGenerators_UnsupportedFlagsLeaveRestingSurface(t *testing.T) {
	th := hutesting.BlueLight(t)

	for _, g := range statefulGenerators() {
		tk, base, states := g.gen(th.Args(component.VariantAccent, component.SizeSM))
		supported := map[component.State]bool{}
		for _, st := range states.Supported() {
			supported[st] = true
		}

		only := map[component.State]component.StateFlags{
			component.StateDisabled: {Disabled: true},
			component.StateReadOnly: {ReadOnly: true},
			component.StateError:    {Error: true},
			component.StateSuccess:  {Success: true},
			component.StateEditing:  {Editing: true},
		}
		for st, f := range only {
			if supported[st] {
				continue
			}
			assert.Equal(t, base, tk.Resolve(f), "%s ignores %s", g.name, st)
		}
	}
}
