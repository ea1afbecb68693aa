package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// Config holds the application configuration loaded from flags, environment
// variables, .env files and the optional config file.
type Config struct {
	// Global flags
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"`
	NoColor bool   `mapstructure:"no_color"`
	Format  string `mapstructure:"format"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogOutput string `mapstructure:"log_output"`

	// Store configuration
	Shop shop.Config `mapstructure:",squash"`

	// ConfigFile is the file actually read, empty when none was found.
	ConfigFile string `mapstructure:"-"`
}

// DefaultConfig returns the configuration used before any source is read.
func DefaultConfig() *Config {
	return &Config{
		LogFormat: "auto",
		LogOutput: "stderr",
		Shop:      shop.DefaultConfig(),
	}
}

// newViper creates a viper instance with every key defaulted so that
// environment variables are seen by Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("quiet", def.Quiet)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("log_output", def.LogOutput)
	v.SetDefault("data_dir", def.Shop.DataDir)
	v.SetDefault("ids.policy", def.Shop.IDs.Policy)
	v.SetDefault("orders.key_by", def.Shop.Orders.KeyBy)
	v.SetDefault("checkout.policy", def.Shop.Checkout.Policy)
	v.SetDefault("checkout.track_stock", def.Shop.Checkout.TrackStock)

	// The unprefixed logging variables shared with pkg/logging also apply.
	_ = v.BindEnv("log_level", constants.EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log_format", constants.EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("log_output", constants.EnvPrefix+"_LOG_OUTPUT", "LOG_OUTPUT")
	return v
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (bound into v by the root command)
//  2. Environment variables (COMICSTORE_DATA_DIR, COMICSTORE_CHECKOUT_POLICY, ...)
//  3. .env and .env.local files
//  4. Config file (--config, or .comicstore.yaml in the working directory or $HOME)
//  5. Defaults
//
// A missing default config file is fine; a missing --config file is not.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(constants.ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "cannot read config file", err)
		}
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.NewConfigError("config", "cannot decode settings", err)
	}
	config.ConfigFile = v.ConfigFileUsed()

	if _, err := output.ParseFormat(config.Format); err != nil {
		return nil, errors.NewConfigError("format", err.Error(), errors.ErrInvalidInput)
	}
	if err := config.Shop.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides a variable that is already set, so .env.local is read first.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
