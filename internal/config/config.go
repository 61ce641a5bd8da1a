package config

import (
	"encoding/base64"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds every setting of the service. Values come from the environment
// (prefixed with MOODBOARD_), optionally seeded from a .env file.
type Config struct {
	Env               string        `mapstructure:"ENV" validate:"oneof=development production test"`
	AppPort           string        `mapstructure:"APP_PORT" validate:"required"`
	DatabaseDSN       string        `mapstructure:"DATABASE_DSN" validate:"required"`
	SecretKey         string        `mapstructure:"SECRET_KEY"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL" validate:"gt=0"`
	UnsplashAccessKey string        `mapstructure:"UNSPLASH_ACCESS_KEY"`
	UnsplashBaseURL   string        `mapstructure:"UNSPLASH_BASE_URL" validate:"required,url"`
	UnsplashTimeout   time.Duration `mapstructure:"UNSPLASH_TIMEOUT" validate:"gt=0"`
	RabbitMQURL       string        `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange  string        `mapstructure:"RABBITMQ_EXCHANGE" validate:"required"`
	LogLevel          string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// GeneratedSecret is set when SecretKey was not configured and a
	// throwaway key was generated for this process.
	GeneratedSecret bool `mapstructure:"-"`
}

var defaults = map[string]interface{}{
	"ENV":                 EnvDevelopment,
	"APP_PORT":            ":8080",
	"DATABASE_DSN":        "file:moodboard.db",
	"SECRET_KEY":          "",
	"SESSION_TTL":         "24h",
	"UNSPLASH_ACCESS_KEY": "",
	"UNSPLASH_BASE_URL":   "https://api.unsplash.com",
	"UNSPLASH_TIMEOUT":    "10s",
	"RABBITMQ_URL":        "",
	"RABBITMQ_EXCHANGE":   "moodboard.events",
	"LOG_LEVEL":           "info",
}

// New loads the configuration. A .env file in the working directory is read
// first if present; real environment variables win over it.
func New() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MOODBOARD")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	if cfg.SecretKey == "" {
		if cfg.Env == EnvProduction {
			return errors.New("SECRET_KEY is required in production")
		}
		cfg.SecretKey = encryptcookie.GenerateKey()
		cfg.GeneratedSecret = true
		return nil
	}

	key, err := base64.StdEncoding.DecodeString(cfg.SecretKey)
	if err != nil {
		return errors.Wrap(err, "SECRET_KEY must be base64 encoded")
	}
	if len(key) != 32 {
		return errors.Errorf("SECRET_KEY must decode to 32 bytes, got %d", len(key))
	}
	return nil
}
