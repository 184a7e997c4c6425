package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tungetti/hue/internal/app"
	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/constants"
	"github.com/tungetti/hue/internal/errors"
)

type componentFlags struct {
	themeFlags
	variant string
	size    string

	state    component.StateFlags
	gradient component.GradientOptions
}

func (c *CLI) newComponentCommand() *cobra.Command {
	var flags componentFlags
	cmd := &cobra.Command{
		Use:   "component <name>",
		Short: "Print the tokens a component generator produces",
		Long: `Run one component generator and print its tokens together with the
surface resolved for the given state flags.

Components: ` + strings.Join(component.Names(), ", ") + `

Examples:
  hue component input --variant primary --size md
  hue component input --error --disabled
  hue component proCard --gradient --inverse-stroke --format json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: component.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flags.format)
			if err != nil {
				return err
			}
			variant, ok := component.ParseVariant(flags.variant)
			if !ok {
				return errors.Newf(errors.Validation, "unknown variant %q", flags.variant).WithOp("cli.component")
			}
			size, ok := component.ParseSize(flags.size)
			if !ok {
				return errors.Newf(errors.Validation, "unknown size %q", flags.size).WithOp("cli.component")
			}

			return c.withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				t, mode, err := flags.resolve(a.Container().GetTheme().Snapshot())
				if err != nil {
					return err
				}
				out, err := component.Generate(args[0], component.Args{
					Tokens:   t,
					Mode:     mode,
					Variant:  variant,
					Size:     size,
					Gradient: flags.gradient,
				})
				if err != nil {
					return err
				}

				doc := componentDocument{
					Component: args[0],
					Scheme:    t.Scheme().String(),
					Mode:      mode.String(),
					Variant:   string(variant),
					Size:      string(size),
					Resolved:  out.Resolve(flags.state),
					Tokens:    out,
				}
				if format == constants.FormatSwatch {
					return writeSurfaceSwatch(cmd.OutOrStdout(), doc, t.Canvas())
				}
				return encode(cmd.OutOrStdout(), format, doc)
			})
		},
	}

	flags.register(cmd)
	f := cmd.Flags()
	f.StringVar(&flags.variant, "variant", string(component.VariantDefault), "component variant")
	f.StringVar(&flags.size, "size", string(component.DefaultSize), "component size (xs, sm, md, lg, xl)")
	f.BoolVar(&flags.state.Disabled, "disabled", false, "resolve the disabled state")
	f.BoolVar(&flags.state.ReadOnly, "read-only", false, "resolve the read-only state")
	f.BoolVar(&flags.state.Error, "error", false, "resolve the error state")
	f.BoolVar(&flags.state.Success, "success", false, "resolve the success state")
	f.BoolVar(&flags.state.Editing, "editing", false, "resolve the editing state")
	f.BoolVar(&flags.gradient.Gradient, "gradient", false, "fill with a gradient")
	f.BoolVar(&flags.gradient.InverseStroke, "inverse-stroke", false, "stroke with the reversed fill gradient")
	f.BoolVar(&flags.gradient.StrokeOnly, "stroke-only", false, "draw only the stroke gradient")
	f.IntVar(&flags.gradient.Angle, "angle", 0, "gradient angle in degrees (0 uses the default)")
	return cmd
}
