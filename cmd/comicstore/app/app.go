// Package app wires configuration, logging and the store together for the
// comicstore command line. Subcommands receive the App through
// appcontext.Interface and never touch globals.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/appcontext"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// App represents the comicstore application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	viper       *viper.Viper
	config      *Config
	configFile  string
	logger      *zerolog.Logger
	fixedLogger bool
	fs          afero.Fs
	stdin       io.Reader
	stdout      io.Writer

	// Shop is opened on first use
	mu   sync.Mutex
	shop *shop.Shop
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App with default configuration. The configuration is
// read from every source once the command line has been parsed.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		viper:   newViper(),
		config:  DefaultConfig(),
		fs:      afero.NewOsFs(),
		stdin:   os.Stdin,
	}

	logger := NewLogger(app.config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, or table on a terminal and JSON otherwise.
func (a *App) OutputFormat() output.Format {
	return output.DetectFormat(a.config.Format)
}

// Stdin returns the reader the interactive shell uses.
func (a *App) Stdin() io.Reader {
	return a.stdin
}

// Shop opens the store on first use and returns the same instance afterwards.
func (a *App) Shop() (*shop.Shop, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.shop != nil {
		return a.shop, nil
	}

	s, err := shop.Open(a.config.Shop, shop.WithFS(a.fs), shop.WithLogger(a.logger))
	if err != nil {
		return nil, errors.WrapResource("open", "shop", a.config.Shop.DataDir, err)
	}
	a.shop = s
	return s, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfigFile reads settings from path instead of searching for .comicstore.yaml.
func WithConfigFile(path string) Option {
	return func(a *App) error {
		a.configFile = path
		return nil
	}
}

// WithLogger sets a custom logger. The logging flags are then ignored.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.fixedLogger = true
		return nil
	}
}

// WithFS replaces the filesystem the store is opened on.
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		if fs == nil {
			return errors.NewValidationError("fs", nil, "must not be nil")
		}
		a.fs = fs
		return nil
	}
}

// WithStdin sets the reader the shell reads answers from.
func WithStdin(r io.Reader) Option {
	return func(a *App) error {
		a.stdin = r
		return nil
	}
}

// WithOutput sends command output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.stdout = w
		return nil
	}
}

// WithShop sets a pre-opened shop (useful for testing).
func WithShop(s *shop.Shop) Option {
	return func(a *App) error {
		a.shop = s
		return nil
	}
}
