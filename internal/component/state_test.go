package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSurfaces() (Surface, StateSurfaces) {
	base := Surface{Background: "#base00", Border: "#base01", Text: "#base02"}
	mk := func(tag string) *Surface {
		return &Surface{Background: "#" + tag + "-bg", Border: "#" + tag + "-bd", Text: "#" + tag + "-tx"}
	}
	return base, StateSurfaces{
		Disabled: mk("disabled"),
		ReadOnly: mk("readonly"),
		Error:    mk("error"),
		Success:  mk("success"),
		Editing:  mk("editing"),
	}
}

// =============================================================================
// Precedence
// =============================================================================

func TestStateSurfaces_Resolve_Precedence(t *testing.T) {
	base, states := testSurfaces()

	tests := []struct {
		name     string
		flags    StateFlags
		expected State
	}{
		{"none", StateFlags{}, StateDefault},
		{"disabled over readOnly", StateFlags{Disabled: true, ReadOnly: true}, StateDisabled},
		{"readOnly over error", StateFlags{ReadOnly: true, Error: true}, StateReadOnly},
		{"error over success", StateFlags{Error: true, Success: true}, StateError},
		{"success over editing", StateFlags{Success: true, Editing: true}, StateSuccess},
		{"disabled over error", StateFlags{Disabled: true, Error: true}, StateDisabled},
		{"editing alone", StateFlags{Editing: true}, StateEditing},
		{"everything", StateFlags{Disabled: true, ReadOnly: true, Error: true, Success: true, Editing: true}, StateDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := states.Resolve(base, tt.flags)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestStateSurfaces_Resolve_ReturnsWinningSurfaceUnblended(t *testing.T) {
	base, states := testSurfaces()

	_, s := states.Resolve(base, StateFlags{Error: true, Success: true})
	assert.Equal(t, *states.Error, s)

	_, s = states.Resolve(base, StateFlags{})
	assert.Equal(t, base, s)
}

func TestStateSurfaces_Resolve_SkipsUnsupported(t *testing.T) {
	base, states := testSurfaces()
	states.ReadOnly = nil
	states.Editing = nil

	state, _ := states.Resolve(base, StateFlags{ReadOnly: true, Error: true})
	assert.Equal(t, StateError, state)

	state, s := states.Resolve(base, StateFlags{Editing: true})
	assert.Equal(t, StateDefault, state)
	assert.Equal(t, base, s)
}

func TestStateSurfaces_Supported(t *testing.T) {
	_, states := testSurfaces()
	assert.Equal(t, []State{StateDisabled, StateReadOnly, StateError, StateSuccess, StateEditing}, states.Supported())
	assert.Empty(t, StateSurfaces{}.Supported())
	assert.Equal(t, []State{StateDisabled}, StateSurfaces{Disabled: &Surface{}}.Supported())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "readOnly", StateReadOnly.String())
	assert.Equal(t, "default", StateDefault.String())
	assert.Equal(t, "unknown", State(42).String())
}
