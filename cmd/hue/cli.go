package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tungetti/hue/internal/app"
	"github.com/tungetti/hue/internal/config"
	"github.com/tungetti/hue/internal/constants"
	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/prefs"
)

// globalFlags are the flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
	verbose    bool
	quiet      bool
}

// CLI wires the cobra command tree to the application container.
type CLI struct {
	out    io.Writer
	errOut io.Writer
	flags  globalFlags
	root   *cobra.Command

	// prefs replaces the file-backed preference store when set.
	prefs prefs.Store
}

// NewCLI creates the command tree writing to out and errOut.
func NewCLI(out, errOut io.Writer) *CLI {
	c := &CLI{out: out, errOut: errOut}
	c.root = c.newRootCommand()
	return c
}

func (c *CLI) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: constants.AppDescription,
		Long: `hue derives a complete set of color tokens from a color scheme and a
light or dark mode, and generates per-component tokens for cards, inputs,
dialogs and other UI primitives.

The chosen scheme and mode are remembered between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default "+config.DefaultConfig().ConfigPath()+")")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&c.flags.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&c.flags.quiet, "quiet", "q", false, "only log errors")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if c.flags.noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}

	root.AddCommand(
		c.newTokensCommand(),
		c.newComponentCommand(),
		c.newSchemeCommand(),
		c.newModeCommand(),
		c.newPreviewCommand(),
		c.newVersionCommand(),
	)
	return root
}

// Run executes args and returns a process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	c.root.SetArgs(args)
	if err := c.root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		code := exitCode(err)
		if code == constants.ExitUsage {
			fmt.Fprintf(c.errOut, "Run '%s --help' for usage.\n", constants.AppName)
		}
		return code.Int()
	}
	return constants.ExitSuccess.Int()
}

// exitCode maps an error to the process exit code. Errors that are not
// *errors.Error come from cobra's argument and flag parsing.
func exitCode(err error) constants.ExitCode {
	if err == nil {
		return constants.ExitSuccess
	}
	var e *errors.Error
	if !errors.As(err, &e) {
		return constants.ExitUsage
	}
	switch e.Code {
	case errors.Configuration:
		return constants.ExitConfiguration
	case errors.Validation:
		return constants.ExitValidation
	case errors.NotFound:
		return constants.ExitUsage
	default:
		return constants.ExitError
	}
}

// applyFlags copies explicitly set global flags over the loaded config.
func (c *CLI) applyFlags(cfg *config.Config) {
	pf := c.root.PersistentFlags()
	if pf.Changed("log-level") {
		cfg.LogLevel = c.flags.logLevel
	}
	if pf.Changed("log-file") {
		cfg.LogFile = c.flags.logFile
	}
	if pf.Changed("no-color") {
		cfg.NoColor = c.flags.noColor
	}
	if pf.Changed("verbose") {
		cfg.Verbose = c.flags.verbose
	}
	if pf.Changed("quiet") {
		cfg.Quiet = c.flags.quiet
	}
}

// withApp initializes the application, runs fn and shuts down. A shutdown
// failure is returned only when fn succeeded.
func (c *CLI) withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	a := app.New(app.Options{
		Version:    Version,
		BuildTime:  BuildTime,
		GitCommit:  GitCommit,
		ConfigPath: c.flags.configPath,
		Override:   c.applyFlags,
		Prefs:      c.prefs,
		LogOutput:  c.errOut,
	})

	if err := a.Initialize(ctx); err != nil {
		_ = a.Shutdown()
		return err
	}
	if cfg := a.Container().GetConfig(); cfg != nil && cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := a.Run(ctx, func(ctx context.Context, _ *app.Container) error {
		return fn(ctx, a)
	})
	if shutdownErr := a.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}
