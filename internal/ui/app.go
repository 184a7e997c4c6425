// Package ui provides the interactive bubbletea preview. It renders every
// component generator for the store's current theme and re-renders whenever
// the store publishes a new snapshot.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/logging"
	"github.com/tungetti/hue/internal/theme"
	"github.com/tungetti/hue/internal/ui/components"
	"github.com/tungetti/hue/internal/ui/styles"
)

// ThemeStore is the part of *theme.Store the preview uses.
type ThemeStore interface {
	Snapshot() theme.Snapshot
	Subscribe(fn func(theme.Snapshot)) func()
	NextColorScheme(ctx context.Context) bool
	ToggleMode(ctx context.Context) bool
}

// Section is one page of the preview.
type Section int

const (
	SectionInputs Section = iota
	SectionSurfaces
	SectionFeedback
	SectionGenerators
)

var sectionNames = []string{"inputs", "surfaces", "feedback", "generators"}

// String returns the section's navbar label.
func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// sliderStep is how far the slider moves per key press.
const sliderStep = 0.1

// Model is the preview's bubbletea model.
type Model struct {
	Width    int
	Height   int
	Ready    bool
	Quitting bool

	ctx    context.Context
	cancel context.CancelFunc
	store  ThemeStore
	logger logging.Logger
	keyMap KeyMap

	snap     theme.Snapshot
	variant  component.Variant
	size     component.Size
	flags    component.StateFlags
	gradient bool

	memo    *component.Memo[styles.Styles]
	styles  styles.Styles
	navbar  components.NavbarModel
	footer  components.FooterModel
	spinner components.SpinnerModel
	slider  components.SliderModel
}

// New creates a preview bound to store.
func New(ctx context.Context, store ThemeStore, logger logging.Logger) Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	childCtx, cancel := context.WithCancel(ctx)
	m := Model{
		ctx:     childCtx,
		cancel:  cancel,
		store:   store,
		logger:  logger.WithPrefix("preview"),
		keyMap:  DefaultKeyMap(),
		snap:    store.Snapshot(),
		variant: component.VariantPrimary,
		size:    component.DefaultSize,
		memo: component.NewMemo(func(a component.Args) *styles.Styles {
			s := styles.New(a)
			return &s
		}),
	}
	m.styles = *m.memo.Get(m.args())
	m.navbar = components.NewNavbar(m.styles, "hue", sectionNames...)
	m.footer = components.NewFooter(m.styles, m.keyMap)
	m.spinner = components.NewSpinner(m.styles, "loading theme")
	m.slider = components.NewSlider(m.styles, 30)
	m.slider.SetValue(0.6)
	m.updateNavbar()
	return m
}

func (m Model) args() component.Args {
	return component.Args{
		Tokens:  m.snap.Tokens,
		Mode:    m.snap.Mode,
		Variant: m.variant,
		Size:    m.size,
		Gradient: component.GradientOptions{
			Gradient:      m.gradient,
			InverseStroke: m.gradient,
		},
	}
}

// restyle recomputes styles from the memo and pushes them into every child.
func (m *Model) restyle() {
	m.styles = *m.memo.Get(m.args())
	m.navbar.SetStyles(m.styles)
	m.footer.SetStyles(m.styles)
	m.spinner.SetStyles(m.styles)
	m.slider.SetStyles(m.styles)
	m.slider.SetFlags(m.flags)
	m.updateNavbar()
}

func (m *Model) updateNavbar() {
	right := string(m.snap.ColorScheme) + " · " + string(m.snap.Mode) + " · " + string(m.variant) + " · " + string(m.size)
	if m.gradient {
		right += " · gradient"
	}
	m.navbar.SetRight(right)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.navbar.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		return m, nil

	case ThemeChangedMsg:
		m.applySnapshot(msg.Snapshot)
		return m, nil

	case StoreUpdatedMsg:
		m.applySnapshot(msg.Snapshot)
		if !msg.Changed {
			m.footer.SetStatus(msg.Op+": theme not ready", components.StatusError)
		} else {
			m.footer.SetStatus(msg.Op+": "+string(m.snap.ColorScheme)+" "+string(m.snap.Mode), components.StatusInfo)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case QuitMsg:
		m.Quitting = true
		m.cancel()
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applySnapshot(s theme.Snapshot) {
	if s == m.snap {
		return
	}
	m.snap = s
	m.restyle()
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keyMap
	switch {
	case key.Matches(msg, k.Quit):
		return m, Quit()

	case key.Matches(msg, k.Help):
		m.footer.ToggleFullHelp()

	case key.Matches(msg, k.Scheme):
		return m, m.changeTheme("scheme", m.store.NextColorScheme)

	case key.Matches(msg, k.Mode):
		return m, m.changeTheme("mode", m.store.ToggleMode)

	case key.Matches(msg, k.Disabled):
		m.flags.Disabled = !m.flags.Disabled
		m.restyle()
	case key.Matches(msg, k.ReadOnly):
		m.flags.ReadOnly = !m.flags.ReadOnly
		m.restyle()
	case key.Matches(msg, k.Error):
		m.flags.Error = !m.flags.Error
		m.restyle()
	case key.Matches(msg, k.Success):
		m.flags.Success = !m.flags.Success
		m.restyle()
	case key.Matches(msg, k.Editing):
		m.flags.Editing = !m.flags.Editing
		m.restyle()

	case key.Matches(msg, k.Larger):
		m.size = m.size.Larger()
		m.restyle()
	case key.Matches(msg, k.Smaller):
		m.size = m.size.Smaller()
		m.restyle()

	case key.Matches(msg, k.Variant):
		m.variant = nextVariant(m.variant)
		m.restyle()

	case key.Matches(msg, k.Gradient):
		m.gradient = !m.gradient
		m.restyle()

	case key.Matches(msg, k.Section):
		m.navbar.Next()

	case key.Matches(msg, k.Left):
		m.slider.Step(-sliderStep)
	case key.Matches(msg, k.Right):
		m.slider.Step(sliderStep)
	}
	return m, nil
}

// changeTheme runs a store setter off the update loop. Store subscribers
// call Program.Send, which must not happen from inside Update.
func (m Model) changeTheme(op string, fn func(context.Context) bool) tea.Cmd {
	ctx, store, logger := m.ctx, m.store, m.logger
	return func() tea.Msg {
		changed := fn(ctx)
		logger.Debug("theme change requested", "op", op, "changed", changed)
		return StoreUpdatedMsg{Op: op, Changed: changed, Snapshot: store.Snapshot()}
	}
}

func nextVariant(v component.Variant) component.Variant {
	all := component.Variants()
	for i, x := range all {
		if x == v {
			return all[(i+1)%len(all)]
		}
	}
	return component.VariantPrimary
}

// Shutdown cancels the model's context.
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Context returns the model's context.
func (m Model) Context() context.Context {
	return m.ctx
}

// Snapshot returns the theme snapshot the model last rendered.
func (m Model) Snapshot() theme.Snapshot {
	return m.snap
}

// Flags returns the current state inputs.
func (m Model) Flags() component.StateFlags {
	return m.flags
}

// Variant returns the current variant.
func (m Model) Variant() component.Variant {
	return m.variant
}

// Size returns the current size.
func (m Model) Size() component.Size {
	return m.size
}

// Section returns the active section.
func (m Model) Section() Section {
	return Section(m.navbar.Active())
}

// Styles returns the styles in use.
func (m Model) Styles() styles.Styles {
	return m.styles
}

// KeyMap returns the key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keyMap
}
