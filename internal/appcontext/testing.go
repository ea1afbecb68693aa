package appcontext

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/flatfile"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
)

// Test credentials written by NewTestMock.
const (
	TestAdminUser     = "admin"
	TestAdminPassword = "secret"
)

// NewTestMock returns a Mock over a fresh in-memory store holding only the
// test admin credential.
func NewTestMock(t testing.TB, format output.Format) (*Mock, *shop.Shop) {
	t.Helper()

	fs := afero.NewMemMapFs()
	cfg := shop.DefaultConfig()
	admin := cfg.DataDir + "/" + constants.AdminFile
	if err := flatfile.New(fs).WriteLines(admin, []string{TestAdminUser + "," + TestAdminPassword}); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	s, err := shop.Open(cfg, shop.WithFS(fs), shop.WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("open shop: %v", err)
	}

	return &Mock{
		ShopFunc: func() (*shop.Shop, error) { return s, nil },
		Format:   format,
	}, s
}
