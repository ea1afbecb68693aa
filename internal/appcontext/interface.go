// Package appcontext defines what subcommands need from the application.
// The App in cmd/comicstore/app implements Interface; tests use Mock.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
)

// Interface is the dependency set handed to every subcommand.
type Interface interface {
	// Shop opens the store on first use and returns the same instance afterwards.
	Shop() (*shop.Shop, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the resolved output format.
	OutputFormat() output.Format

	// Stdin is where the interactive shell reads from.
	Stdin() io.Reader

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
