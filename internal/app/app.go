package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/tungetti/hue/internal/config"
	"github.com/tungetti/hue/internal/constants"
	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/logging"
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/prefs"
	"github.com/tungetti/hue/internal/theme"
)

// App owns the dependency container and the lifecycle of one hue run.
type App struct {
	container *Container
	lifecycle *Lifecycle
	opts      Options
}

// Options configures the application.
type Options struct {
	Version   string
	BuildTime string
	GitCommit string

	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Override is applied to the loaded config before validation, e.g. to
	// apply command-line flags.
	Override func(*config.Config)
	// Prefs replaces the file-backed preference store.
	Prefs prefs.Store
	// Logger replaces the logger built from the config.
	Logger logging.Logger
	// LogOutput is where the console logger writes. Defaults to stderr.
	LogOutput io.Writer

	ShutdownTimeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Version:         "dev",
		BuildTime:       "unknown",
		GitCommit:       "unknown",
		ShutdownTimeout: constants.ShutdownTimeout,
	}
}

// New creates a new application with the given options.
func New(opts Options) *App {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = constants.ShutdownTimeout
	}
	return &App{
		container: NewContainer(),
		lifecycle: NewLifecycle(opts.ShutdownTimeout),
		opts:      opts,
	}
}

// Initialize sets up all application components in order:
// config, logger, preference store, theme store.
func (a *App) Initialize(ctx context.Context) error {
	// 1. Configuration
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.container.SetConfig(cfg)
	if cfg.ShutdownTimeout > 0 {
		a.lifecycle.timeout = cfg.ShutdownTimeout
	}

	// 2. Logger
	logger, err := a.initLogger(cfg)
	if err != nil {
		return errors.Wrap(errors.Configuration, "failed to initialize logger", err).WithOp("app.Initialize")
	}
	a.container.SetLogger(logger)

	logger.Debug("starting application",
		"version", a.opts.Version,
		"build_time", a.opts.BuildTime,
		"git_commit", a.opts.GitCommit,
	)

	// 3. Preference store
	store := a.opts.Prefs
	if store == nil {
		fs := prefs.NewFileStore(cfg.PreferencesPath())
		logger.Debug("using preference file", "path", fs.Path())
		store = fs
	}
	a.container.SetPrefs(store)

	// 4. Theme store. Defaults were validated with the config.
	scheme, _ := palette.ParseColorScheme(cfg.DefaultScheme)
	mode, _ := palette.ParseMode(cfg.DefaultMode)
	th := theme.NewStore(store, logger, theme.WithDefaults(scheme, mode))
	if err := th.Init(ctx); err != nil {
		return err
	}
	a.container.SetTheme(th)
	a.lifecycle.OnShutdown("theme", func(context.Context) error {
		return th.Close()
	})

	return a.container.Validate()
}

// Run executes fn with panic recovery. A panic is logged with its stack and
// returned as an error.
func (a *App) Run(ctx context.Context, fn func(ctx context.Context, c *Container) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = a.handlePanic(r)
		}
	}()
	return fn(ctx, a.container)
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown() error {
	return a.lifecycle.Shutdown()
}

// Container returns the dependency container.
func (a *App) Container() *Container {
	return a.container
}

// Lifecycle returns the lifecycle manager.
func (a *App) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Version returns the application version.
func (a *App) Version() string {
	return a.opts.Version
}

func (a *App) loadConfig() (*config.Config, error) {
	path := a.opts.ConfigPath
	if path == "" {
		path = config.DefaultConfig().ConfigPath()
	}
	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		return nil, err
	}
	if a.opts.Override != nil {
		a.opts.Override(cfg)
	}
	if err := config.NewValidator().ValidateOrError(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) initLogger(cfg *config.Config) (logging.Logger, error) {
	if a.opts.Logger != nil {
		return a.opts.Logger, nil
	}

	level := logging.ParseLevel(cfg.LogLevel)
	switch {
	case cfg.IsVerbose():
		level = logging.LevelDebug
	case cfg.IsSilent():
		level = logging.LevelError
	}

	if cfg.LogFile != "" {
		logger, closer, err := logging.NewFileLogger(cfg.LogFile, level)
		if err != nil {
			return nil, err
		}
		a.lifecycle.OnShutdown("log file", func(context.Context) error {
			return closer.Close()
		})
		return logger, nil
	}

	opts := logging.DefaultOptions()
	opts.Level = level
	opts.NoColor = cfg.NoColor
	if a.opts.LogOutput != nil {
		opts.Output = a.opts.LogOutput
	}
	return logging.New(opts), nil
}

// handlePanic logs a recovered panic with its stack and returns it as an error.
func (a *App) handlePanic(r interface{}) error {
	stack := debug.Stack()
	logger := a.container.GetLogger()

	if logger != nil {
		logger.Error("panic recovered",
			"panic", fmt.Sprintf("%v", r),
			"stack", string(stack),
		)
	} else {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s\n", r, stack)
	}

	return errors.Newf(errors.Unknown, "panic: %v", r)
}
