package shop

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cart"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
)

func openTestShop(t *testing.T, fs afero.Fs, mutate func(*Config)) *Shop {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = "store"
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := Open(cfg, WithFS(fs), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return s
}

func TestOpenCreatesFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := openTestShop(t, fs, nil)

	for _, name := range []string{"comics.txt", "stock.txt", "customers.txt", "orders.txt"} {
		ok, err := afero.Exists(fs, "store/"+name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
	assert.Equal(t, 0, s.Catalog().Len())
	assert.Equal(t, "store", s.Config().DataDir)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IDs.Policy = "newest"
	cfg.Orders.KeyBy = "receipt"
	cfg.Checkout.Policy = "maybe"

	_, err := Open(cfg, WithFS(afero.NewMemMapFs()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ids.policy")
	assert.Contains(t, err.Error(), "orders.key_by")
	assert.Contains(t, err.Error(), "checkout.policy")

	cfg = DefaultConfig()
	cfg.DataDir = ""
	assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidInput)
	assert.NoError(t, DefaultConfig().Validate())
}

func TestEndToEndPurchase(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := openTestShop(t, fs, nil)

	comic, err := s.Catalog().Add(catalog.ComicInput{Title: "Watchmen", Creator: "Alan Moore", Price: decimal.RequireFromString("19.99")})
	require.NoError(t, err)
	_, err = s.Ledger().Create(comic.ID, 3)
	require.NoError(t, err)
	customer, err := s.Directory().Add("Ann", "ann@example.com")
	require.NoError(t, err)

	c := s.NewCart(cart.WithCustomer(customer.ID))
	_, err = c.Add("watchmen", 2)
	require.NoError(t, err)
	receipt, err := c.Checkout(context.Background())
	require.NoError(t, err)

	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("39.98")))
	assert.Equal(t, 1, s.Ledger().QuantityFor(comic.ID))
	assert.Len(t, s.Orders().ForCustomer(customer.ID), 1)

	// A second shop over the same files sees the same state.
	again := openTestShop(t, fs, nil)
	assert.Equal(t, 1, again.Orders().Len())
	assert.Equal(t, 1, again.Ledger().QuantityFor(comic.ID))
}

func TestNewCartHonorsConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := openTestShop(t, fs, func(cfg *Config) {
		cfg.Checkout.TrackStock = false
		cfg.Checkout.Policy = "validate-first"
	})

	comic, err := s.Catalog().Add(catalog.ComicInput{Title: "Saga", Price: decimal.NewFromInt(3)})
	require.NoError(t, err)
	_, err = s.Ledger().Create(comic.ID, 0)
	require.NoError(t, err)

	c := s.NewCart()
	assert.Equal(t, cart.PolicyValidateFirst, c.Policy())
	_, err = c.Add("Saga", 5)
	require.NoError(t, err)

	_, err = c.Checkout(context.Background())
	require.NoError(t, err, "stock is not drawn when tracking is off")
	assert.Equal(t, 0, s.Ledger().QuantityFor(comic.ID))
}

func TestLedgerRejectsUnknownComic(t *testing.T) {
	s := openTestShop(t, afero.NewMemMapFs(), nil)
	_, err := s.Ledger().Create(42, 1)
	assert.True(t, errors.IsNotFound(err))
}

func TestOrdersKeyedByComic(t *testing.T) {
	s := openTestShop(t, afero.NewMemMapFs(), func(cfg *Config) { cfg.Orders.KeyBy = "comic" })

	comic, err := s.Catalog().Add(catalog.ComicInput{Title: "Bone", Price: decimal.NewFromInt(4)})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		c := s.NewCart()
		_, err := c.Add("Bone", 1)
		require.NoError(t, err)
		_, err = c.Checkout(context.Background())
		require.NoError(t, err)
	}

	for _, o := range s.Orders().List() {
		assert.Equal(t, comic.ID, o.ID)
	}
}

func TestAuthenticate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "store/admin.txt", []byte("admin,admin123\n"), 0o644))
	s := openTestShop(t, fs, nil)

	assert.NoError(t, s.Authenticate("admin", "admin123"))
	assert.True(t, errors.IsAccessDenied(s.Authenticate("admin", "nope")))
	assert.NotNil(t, s.Auth())
}

func TestSnapshot(t *testing.T) {
	s := openTestShop(t, afero.NewMemMapFs(), nil)

	comic, err := s.Catalog().Add(catalog.ComicInput{Title: "Maus", Price: decimal.NewFromInt(14)})
	require.NoError(t, err)
	_, err = s.Ledger().Create(comic.ID, 2)
	require.NoError(t, err)
	require.NoError(t, s.Catalog().Delete(comic.ID))

	snap := s.Snapshot()
	assert.Empty(t, snap.Comics)
	require.Len(t, snap.Stock, 1)
	assert.Equal(t, "Unknown Comic", snap.Stock[0].Title)
}
