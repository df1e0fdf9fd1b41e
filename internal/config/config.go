package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds all runtime settings, loaded from the environment.
// Shipping fee and free-shipping threshold are deliberately plain
// decimals with no currency attached; the catalog decides the unit.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Storage selects the persistence backend: "postgres" or "memory".
	Storage string `envconfig:"STORAGE" default:"postgres"`

	ShippingFee           decimal.Decimal `envconfig:"SHIPPING_FEE" default:"10"`
	FreeShippingThreshold decimal.Decimal `envconfig:"FREE_SHIPPING_THRESHOLD" default:"75"`

	SessionCookieName   string `envconfig:"SESSION_COOKIE_NAME" default:"ah_session"`
	SessionCookieMaxAge int    `envconfig:"SESSION_COOKIE_MAX_AGE" default:"86400"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
