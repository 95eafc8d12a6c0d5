package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Simulate SimulateConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// RedisConfig is optional: an empty address keeps carts and the product cache
// in process memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// RabbitMQConfig is optional: an empty URL disables order-placed publishing.
type RabbitMQConfig struct {
	URL string `env:"RABBITMQ_URL" envDefault:""`
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" envDefault:"super-secret-key"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

type PricingConfig struct {
	FreeShippingOver decimal.Decimal `env:"PRICING_FREE_SHIPPING_OVER" envDefault:"50"`
	ShippingFee      decimal.Decimal `env:"PRICING_SHIPPING_FEE" envDefault:"5.99"`
	TaxRate          decimal.Decimal `env:"PRICING_TAX_RATE" envDefault:"0.07"`
}

// SimulateConfig tunes the fake-network delays that stand in for real
// backend calls in the demo.
type SimulateConfig struct {
	AuthDelay           time.Duration `env:"SIMULATE_AUTH_DELAY" envDefault:"1s"`
	PaymentConfirmDelay time.Duration `env:"SIMULATE_PAYMENT_CONFIRM_DELAY" envDefault:"1500ms"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
