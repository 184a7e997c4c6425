package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tungetti/hue/internal/app"
	"github.com/tungetti/hue/internal/ui"
)

func (c *CLI) newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Open the interactive component preview",
		Long: `Open a terminal preview of every component for the saved theme.

Press s to cycle schemes, m to switch light and dark, 1-5 to toggle states,
+/- to change size, v to change variant, ? for help and q to quit. Scheme and
mode changes are saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				ctx, cancel := context.WithCancel(ctx)
				defer cancel()

				logger := a.Container().GetLogger()
				go func() {
					if sig := a.Lifecycle().WaitForSignal(); sig != nil {
						logger.Info("received signal, closing preview", "signal", sig.String())
						cancel()
					}
				}()

				return ui.Run(ctx, a.Container().GetTheme(), logger)
			})
		},
	}
}

func (c *CLI) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printVersion(cmd)
		},
	}
}
