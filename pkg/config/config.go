package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	CORS     CORSConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	DemoUser DemoUserConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"THREADLINE_APP_ENV" default:"development"`
	Port         string `envconfig:"THREADLINE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"THREADLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"THREADLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path points at the SQLite file backing snapshot storage. The
	// in-memory DSN keeps tests and throwaway runs off the filesystem.
	Path string `envconfig:"THREADLINE_DB_PATH" default:"threadline.db"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"THREADLINE_CORS_ORIGINS" default:"http://localhost:3000"`
}

type CatalogConfig struct {
	FeaturedLimit int `envconfig:"THREADLINE_CATALOG_FEATURED_LIMIT" default:"8"`
}

type CheckoutConfig struct {
	TaxRate               decimal.Decimal `envconfig:"THREADLINE_CHECKOUT_TAX_RATE" default:"0.10"`
	FreeShippingThreshold decimal.Decimal `envconfig:"THREADLINE_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"50"`
	ShippingFlatRate      decimal.Decimal `envconfig:"THREADLINE_CHECKOUT_SHIPPING_FLAT_RATE" default:"9.99"`
	OrderNumberPrefix     string          `envconfig:"THREADLINE_CHECKOUT_ORDER_PREFIX" default:"TL"`
}

type DemoUserConfig struct {
	ID    string `envconfig:"THREADLINE_DEMO_USER_ID" default:"demo-user"`
	Name  string `envconfig:"THREADLINE_DEMO_USER_NAME" default:"Demo Shopper"`
	Email string `envconfig:"THREADLINE_DEMO_USER_EMAIL" default:"demo@threadline.shop"`
}
