package shop

import (
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cart"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/repository"
)

// Config selects the data directory and the policies of the store.
type Config struct {
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	IDs struct {
		Policy string `mapstructure:"policy" yaml:"policy"` // last | max
	} `mapstructure:"ids" yaml:"ids"`

	Orders struct {
		KeyBy string `mapstructure:"key_by" yaml:"key_by"` // order | comic
	} `mapstructure:"orders" yaml:"orders"`

	Checkout struct {
		Policy     string `mapstructure:"policy" yaml:"policy"` // best-effort | validate-first
		TrackStock bool   `mapstructure:"track_stock" yaml:"track_stock"`
	} `mapstructure:"checkout" yaml:"checkout"`
}

// DefaultConfig returns the settings that match the historical store.
func DefaultConfig() Config {
	var cfg Config
	cfg.DataDir = constants.DefaultDataDir
	cfg.IDs.Policy = repository.IDPolicyLast.String()
	cfg.Orders.KeyBy = records.KeyByOrderID.String()
	cfg.Checkout.Policy = cart.PolicyBestEffort.String()
	cfg.Checkout.TrackStock = true
	return cfg
}

// policies is Config with every enum parsed.
type policies struct {
	ids      repository.IDPolicy
	keyBy    records.OrderKey
	checkout cart.Policy
}

// parse validates every enum of cfg and reports all bad values at once.
func (cfg Config) parse() (policies, error) {
	var p policies
	var errs []error
	var err error

	if cfg.DataDir == "" {
		errs = append(errs, errors.NewConfigError("data_dir", "must not be empty", errors.ErrInvalidInput))
	}
	if p.ids, err = repository.ParseIDPolicy(cfg.IDs.Policy); err != nil {
		errs = append(errs, err)
	}
	if p.keyBy, err = records.ParseOrderKey(cfg.Orders.KeyBy); err != nil {
		errs = append(errs, err)
	}
	if p.checkout, err = cart.ParsePolicy(cfg.Checkout.Policy); err != nil {
		errs = append(errs, err)
	}
	return p, errors.Join(errs...)
}

// Validate reports every invalid setting.
func (cfg Config) Validate() error {
	_, err := cfg.parse()
	return err
}
