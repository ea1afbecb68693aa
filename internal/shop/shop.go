// Package shop opens every repository of the store from one data directory
// and wires them together. Nothing here is global; callers own the Shop.
//
// Example usage:
//
//	s, err := shop.Open(shop.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	c := s.NewCart(cart.WithCustomer(3))
//	if _, err := c.Add("Watchmen", 1); err != nil {
//	    return err
//	}
//	receipt, err := c.Checkout(ctx)
package shop

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/auth"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cart"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/directory"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/flatfile"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/ledger"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/orders"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

// Shop owns the repositories of one data directory.
type Shop struct {
	cfg      Config
	policies policies
	store    *flatfile.Store
	logger   *zerolog.Logger

	catalog   *catalog.Catalog
	ledger    *ledger.Ledger
	directory *directory.Directory
	orders    *orders.History
	auth      *auth.Checker
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	fs     afero.Fs
	logger *zerolog.Logger
}

// WithFS replaces the real filesystem, typically with afero.NewMemMapFs in tests.
func WithFS(fs afero.Fs) Option {
	return func(o *openOptions) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithLogger sets the logger handed to every repository.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Open validates cfg and loads every repository under cfg.DataDir.
func Open(cfg Config, opts ...Option) (*Shop, error) {
	p, err := cfg.parse()
	if err != nil {
		return nil, err
	}

	o := openOptions{fs: afero.NewOsFs(), logger: logging.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Shop{
		cfg:      cfg,
		policies: p,
		store:    flatfile.New(o.fs),
		logger:   o.logger,
	}
	repoOpts := []repository.Option{
		repository.WithIDPolicy(p.ids),
		repository.WithLogger(o.logger),
	}

	if s.catalog, err = catalog.New(s.store, s.path(constants.ComicsFile), repoOpts...); err != nil {
		return nil, err
	}
	if s.ledger, err = ledger.New(s.store, s.path(constants.StockFile), s.catalog, repoOpts...); err != nil {
		return nil, err
	}
	if s.directory, err = directory.New(s.store, s.path(constants.CustomersFile), repoOpts...); err != nil {
		return nil, err
	}
	if s.orders, err = orders.New(s.store, s.path(constants.OrdersFile), p.keyBy, repoOpts...); err != nil {
		return nil, err
	}
	s.auth = auth.NewChecker(s.store, s.path(constants.AdminFile))

	o.logger.Debug().
		Str("data_dir", cfg.DataDir).
		Int("comics", s.catalog.Len()).
		Int("stock", s.ledger.Len()).
		Int("customers", s.directory.Len()).
		Int("orders", s.orders.Len()).
		Msg("Opened shop")
	return s, nil
}

// Catalog returns the comic repository.
func (s *Shop) Catalog() *catalog.Catalog { return s.catalog }

// Ledger returns the stock repository.
func (s *Shop) Ledger() *ledger.Ledger { return s.ledger }

// Directory returns the customer repository.
func (s *Shop) Directory() *directory.Directory { return s.directory }

// Orders returns the order history.
func (s *Shop) Orders() *orders.History { return s.orders }

// Auth returns the admin credential checker.
func (s *Shop) Auth() *auth.Checker { return s.auth }

// Config returns the configuration the shop was opened with.
func (s *Shop) Config() Config { return s.cfg }

// Authenticate checks an admin login.
func (s *Shop) Authenticate(username, password string) error {
	return s.auth.Check(username, password)
}

// NewCart creates a cart with the configured checkout policy. Stock is drawn
// from the ledger when checkout.track_stock is set. opts override both.
func (s *Shop) NewCart(opts ...cart.Option) *cart.Cart {
	base := []cart.Option{cart.WithPolicy(s.policies.checkout)}
	if s.cfg.Checkout.TrackStock {
		base = append(base, cart.WithLedger(s.ledger))
	}
	return cart.New(s.catalog, s.orders, append(base, opts...)...)
}

// Snapshot is every record of the store at one moment.
type Snapshot struct {
	Comics    []records.Comic    `json:"comics" yaml:"comics"`
	Customers []records.Customer `json:"customers" yaml:"customers"`
	Stock     []ledger.Entry     `json:"stock" yaml:"stock"`
	Orders    []records.Order    `json:"orders" yaml:"orders"`
}

// Snapshot copies every repository.
func (s *Shop) Snapshot() Snapshot {
	return Snapshot{
		Comics:    s.catalog.List(),
		Customers: s.directory.List(),
		Stock:     s.ledger.Entries(s.catalog),
		Orders:    s.orders.List(),
	}
}

func (s *Shop) path(name string) string {
	return filepath.Join(s.cfg.DataDir, name)
}
