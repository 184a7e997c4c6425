package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/hue/internal/logging"
)

// Run starts the preview program and blocks until it exits or ctx is
// cancelled. Store notifications reach the program through Bridge.
func Run(ctx context.Context, store ThemeStore, logger logging.Logger, opts ...tea.ProgramOption) error {
	m := New(ctx, store, logger)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	stop := Bridge(p, store)
	defer stop()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
