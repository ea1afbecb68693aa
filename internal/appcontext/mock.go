package appcontext

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding field.
// Unset fields fall back to zero values.
type Mock struct {
	ShopFunc func() (*shop.Shop, error)
	Log      *zerolog.Logger
	Format   output.Format
	Input    io.Reader
}

var _ Interface = (*Mock)(nil)

// Shop returns the shop from ShopFunc, or nil.
func (m *Mock) Shop() (*shop.Shop, error) {
	if m.ShopFunc != nil {
		return m.ShopFunc()
	}
	return nil, nil
}

// Logger returns Log or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.Log != nil {
		return m.Log
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format, defaulting to table.
func (m *Mock) OutputFormat() output.Format {
	if m.Format == "" {
		return output.FormatTable
	}
	return m.Format
}

// Stdin returns Input or an empty reader.
func (m *Mock) Stdin() io.Reader {
	if m.Input != nil {
		return m.Input
	}
	return strings.NewReader("")
}

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }
