package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, Redis), security settings
// - default: Values common across all environments (pricing, log format), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Commerce CommerceConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Pricing  PricingConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// CommerceConfig points at the commerce backend of record.
// Timeout 0 means no client-side timeout; the backend owns latency.
type CommerceConfig struct {
	BaseURL string        `envconfig:"COMMERCE_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"COMMERCE_TIMEOUT" default:"0"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CheckoutConfig struct {
	DraftTTL time.Duration `envconfig:"CHECKOUT_DRAFT_TTL" default:"24h"`
}

// PricingConfig carries the storefront totals knobs. Amounts are in cents.
type PricingConfig struct {
	FreeShippingThresholdCents int64   `envconfig:"PRICING_FREE_SHIPPING_THRESHOLD_CENTS" default:"15000"`
	FlatShippingFeeCents       int64   `envconfig:"PRICING_FLAT_SHIPPING_FEE_CENTS" default:"1200"`
	TaxRate                    float64 `envconfig:"PRICING_TAX_RATE" default:"0.08"`
	Currency                   string  `envconfig:"PRICING_CURRENCY" default:"GHS"`
}

type SessionConfig struct {
	CookieDomain string `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite     string `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Commerce: CommerceConfig{
			BaseURL: "http://localhost:18000/api",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Checkout: CheckoutConfig{
			DraftTTL: 24 * time.Hour,
		},
		Pricing: PricingConfig{
			FreeShippingThresholdCents: 15000,
			FlatShippingFeeCents:       1200,
			TaxRate:                    0.08,
			Currency:                   "GHS",
		},
		Session: SessionConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
