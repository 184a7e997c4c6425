package component

import "github.com/tungetti/hue/internal/tokens"

// State is a visual state that overrides a component's resting surface.
type State int

// States in ascending precedence.
const (
	StateDefault State = iota
	StateEditing
	StateSuccess
	StateError
	StateReadOnly
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateEditing:
		return "editing"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	case StateReadOnly:
		return "readOnly"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// StateFlags are the raw per-instance state inputs. Any combination may be
// set; Resolve picks exactly one.
type StateFlags struct {
	Disabled bool
	ReadOnly bool
	Error    bool
	Success  bool
	Editing  bool
}

// Surface is the set of colors a state may override.
type Surface struct {
	Background  string `yaml:"background" json:"background"`
	Border      string `yaml:"border" json:"border"`
	Text        string `yaml:"text" json:"text"`
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// StateSurfaces holds the override surface of each state a component
// supports. A nil entry means the component ignores that state.
type StateSurfaces struct {
	Disabled *Surface `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	ReadOnly *Surface `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Error    *Surface `yaml:"error,omitempty" json:"error,omitempty"`
	Success  *Surface `yaml:"success,omitempty" json:"success,omitempty"`
	Editing  *Surface `yaml:"editing,omitempty" json:"editing,omitempty"`
}

// Supported lists the states with an override, in precedence order.
func (s StateSurfaces) Supported() []State {
	var out []State
	if s.Disabled != nil {
		out = append(out, StateDisabled)
	}
	if s.ReadOnly != nil {
		out = append(out, StateReadOnly)
	}
	if s.Error != nil {
		out = append(out, StateError)
	}
	if s.Success != nil {
		out = append(out, StateSuccess)
	}
	if s.Editing != nil {
		out = append(out, StateEditing)
	}
	return out
}

// Resolve applies the fixed precedence
// disabled > readOnly > error > success > editing > default
// and returns the winning state with its surface. States the component does
// not support are skipped. Surfaces are never blended.
func (s StateSurfaces) Resolve(base Surface, f StateFlags) (State, Surface) {
	switch {
	case f.Disabled && s.Disabled != nil:
		return StateDisabled, *s.Disabled
	case f.ReadOnly && s.ReadOnly != nil:
		return StateReadOnly, *s.ReadOnly
	case f.Error && s.Error != nil:
		return StateError, *s.Error
	case f.Success && s.Success != nil:
		return StateSuccess, *s.Success
	case f.Editing && s.Editing != nil:
		return StateEditing, *s.Editing
	}
	return StateDefault, base
}

// Stateful is implemented by every generator's output.
type Stateful interface {
	// Resolve returns the single surface to paint for the given flags.
	Resolve(StateFlags) Surface
}

func (k kit) disabledSurface() *Surface {
	return &Surface{
		Background:  k.neutral.BgShade,
		Border:      k.neutral.BgShade,
		Text:        k.neutral.TextShade,
		Placeholder: k.neutral.TextShade,
	}
}

func (k kit) readOnlySurface() *Surface {
	return &Surface{
		Background:  k.neutral.Bg,
		Border:      tokens.Mix(k.neutral.BgShade, k.neutral.Pure, 0.25),
		Text:        k.neutral.Text,
		Placeholder: k.neutral.TextShade,
	}
}

func (k kit) errorSurface() *Surface {
	return &Surface{
		Background:  k.danger.Bg,
		Border:      k.danger.Pure,
		Text:        k.danger.Text,
		Placeholder: k.danger.TextShade,
	}
}

func (k kit) successSurface() *Surface {
	return &Surface{
		Background:  k.success.Bg,
		Border:      k.success.Pure,
		Text:        k.success.Text,
		Placeholder: k.success.TextShade,
	}
}

func (k kit) editingSurface() *Surface {
	return &Surface{
		Background:  k.fam.Bg,
		Border:      k.fam.Shade,
		Text:        k.fam.Text,
		Placeholder: k.fam.TextShade,
	}
}

// allStates is the full override set used by form-like components.
func (k kit) allStates() StateSurfaces {
	return StateSurfaces{
		Disabled: k.disabledSurface(),
		ReadOnly: k.readOnlySurface(),
		Error:    k.errorSurface(),
		Success:  k.successSurface(),
		Editing:  k.editingSurface(),
	}
}
