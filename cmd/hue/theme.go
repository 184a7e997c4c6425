package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tungetti/hue/internal/app"
	"github.com/tungetti/hue/internal/palette"
)

func schemeNames() []string {
	out := make([]string, 0, len(palette.Schemes()))
	for _, s := range palette.Schemes() {
		out = append(out, s.String())
	}
	return out
}

func (c *CLI) newSchemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scheme [name]",
		Short: "Show or change the saved color scheme",
		Long: `Without an argument, print the saved color scheme. With one, change it.

Schemes: ` + strings.Join(schemeNames(), ", "),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: schemeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				store := a.Container().GetTheme()
				if len(args) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), store.Snapshot().ColorScheme)
					return err
				}

				scheme, err := palette.ParseColorScheme(args[0])
				if err != nil {
					return err
				}
				if !store.SetColorScheme(ctx, scheme.String()) {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "color scheme is already %s\n", scheme)
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "color scheme set to %s\n", store.Snapshot().ColorScheme)
				return err
			})
		},
	}
}

func (c *CLI) newModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode [light|dark|toggle]",
		Short: "Show or change the saved mode",
		Long: `Without an argument, print the saved mode. With "light" or "dark", set it;
with "toggle", switch to the other mode.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				store := a.Container().GetTheme()
				if len(args) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), store.Snapshot().Mode)
					return err
				}

				if strings.EqualFold(args[0], "toggle") {
					store.ToggleMode(ctx)
				} else {
					mode, err := palette.ParseMode(args[0])
					if err != nil {
						return err
					}
					if !store.SetMode(ctx, mode.String()) {
						_, err := fmt.Fprintf(cmd.OutOrStdout(), "mode is already %s\n", mode)
						return err
					}
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "mode set to %s\n", store.Snapshot().Mode)
				return err
			})
		},
	}
}
