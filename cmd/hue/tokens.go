package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tungetti/hue/internal/app"
	"github.com/tungetti/hue/internal/constants"
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/theme"
	"github.com/tungetti/hue/internal/tokens"
)

// themeFlags select the scheme and mode for one-off output. Unset flags
// fall back to the persisted preference.
type themeFlags struct {
	scheme string
	mode   string
	format string
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scheme, "scheme", "", "color scheme (blue, green, orange); defaults to the saved preference")
	cmd.Flags().StringVar(&f.mode, "mode", "", "mode (light, dark); defaults to the saved preference")
	cmd.Flags().StringVarP(&f.format, "format", "o", string(constants.FormatYAML), "output format (yaml, json, swatch)")
}

// resolve returns the tokens for the flags. When neither flag overrides the
// store's snapshot, its tokens are reused instead of rebuilt.
func (f *themeFlags) resolve(snap theme.Snapshot) (*tokens.AppColorTokens, palette.Mode, error) {
	scheme, mode := snap.ColorScheme, snap.Mode
	if f.scheme != "" {
		s, err := palette.ParseColorScheme(f.scheme)
		if err != nil {
			return nil, "", err
		}
		scheme = s
	}
	if f.mode != "" {
		m, err := palette.ParseMode(f.mode)
		if err != nil {
			return nil, "", err
		}
		mode = m
	}
	if snap.Tokens != nil && scheme == snap.ColorScheme && mode == snap.Mode {
		return snap.Tokens, mode, nil
	}
	t, err := tokens.Build(scheme, mode)
	return t, mode, err
}

func (c *CLI) newTokensCommand() *cobra.Command {
	var flags themeFlags
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the color tokens of a scheme and mode",
		Long: `Print every color family and tone for a scheme and mode.

Examples:
  hue tokens
  hue tokens --scheme green --mode dark --format json
  hue tokens --format swatch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flags.format)
			if err != nil {
				return err
			}
			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				t, _, err := flags.resolve(a.Container().GetTheme().Snapshot())
				if err != nil {
					return err
				}
				if format == constants.FormatSwatch {
					return writeTokenSwatch(cmd.OutOrStdout(), t)
				}
				return encode(cmd.OutOrStdout(), format, newTokenDocument(t))
			})
		},
	}
	flags.register(cmd)
	return cmd
}
