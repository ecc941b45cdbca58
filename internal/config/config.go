package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Stripe  StripeConfig
	Secrets SecretsConfig
}

type ServerConfig struct {
	Port int
	Env  string // "development", "production"
}

type StripeConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SecretsConfig struct {
	// IDPrefix is prepended to the store id to form the secret id.
	IDPrefix string
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_PORT", 8080)
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("STRIPE_TIMEOUT", "30s")
	viper.SetDefault("SECRET_ID_PREFIX", "")

	timeout, err := time.ParseDuration(viper.GetString("STRIPE_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Stripe: StripeConfig{
			BaseURL: viper.GetString("STRIPE_BASE_URL"),
			Timeout: timeout,
		},
		Secrets: SecretsConfig{
			IDPrefix: viper.GetString("SECRET_ID_PREFIX"),
		},
	}

	return cfg, nil
}
