package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	WooBaseURL        string        `envconfig:"WOO_BASE_URL" default:"http://localhost:8081"`
	WooConsumerKey    string        `envconfig:"WOO_CONSUMER_KEY" default:""`
	WooConsumerSecret string        `envconfig:"WOO_CONSUMER_SECRET" default:""`
	RedisAddr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	KafkaBrokers      string        `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	AWSRegion         string        `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	OrderTableName    string        `envconfig:"ORDER_TABLE_NAME" default:"storefront-orders"`
	ShippingFlatRate  string        `envconfig:"SHIPPING_FLAT_RATE" default:"250"`
	Currency          string        `envconfig:"CURRENCY" default:"USD"`
	CatalogCacheTTL   time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
	CartTTL           time.Duration `envconfig:"CART_TTL" default:"720h"`
	SessionTTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if _, err := decimal.NewFromString(cfg.ShippingFlatRate); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ShippingRate returns the flat shipping charge as a decimal. Load has
// already verified the string parses.
func (c *Config) ShippingRate() decimal.Decimal {
	d, _ := decimal.NewFromString(c.ShippingFlatRate)
	return d
}
