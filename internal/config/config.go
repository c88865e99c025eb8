package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// StorageConfig locates the device storage file holding the persisted cart.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// CheckoutConfig carries the simulated checkout rates as decimal strings.
type CheckoutConfig struct {
	FreeShippingMin string        `mapstructure:"free_shipping_min"`
	ShippingFlat    string        `mapstructure:"shipping_flat"`
	TaxRate         string        `mapstructure:"tax_rate"`
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// Every key has a default, so a missing config file is fine.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.storefront/")
	v.AddConfigPath("/etc/storefront/")

	// Enable environment variable override with STOREFRONT_ prefix
	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.path", "storefront-cart.db")
	v.SetDefault("checkout.free_shipping_min", "6249.00")
	v.SetDefault("checkout.shipping_flat", "829.00")
	v.SetDefault("checkout.tax_rate", "0.18")
	v.SetDefault("checkout.processing_delay", 2*time.Second)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
