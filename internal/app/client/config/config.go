package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"recordbook/internal/domain/record"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "prod"
	defaultCollection    = "texts"
	defaultTimeout       = 30 * time.Second
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	Collection     string        `mapstructure:"collection"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Load загружает конфигурацию клиента из .env, переменных окружения и viper.
// Окружение по умолчанию prod: одноразовые команды не пишут debug-логи.
func Load(v *viper.Viper) (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("COLLECTION", defaultCollection)
	v.SetDefault("REQUEST_TIMEOUT", defaultTimeout)

	config := &Config{
		Env:            v.GetString("APP_ENV"),
		ServerAddress:  v.GetString("SERVER_ADDRESS"),
		EnableTLS:      v.GetBool("ENABLE_TLS"),
		Collection:     v.GetString("COLLECTION"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if err := record.ValidateCollection(c.Collection); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}

// BaseURL returns the service root, e.g. http://localhost:8080.
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}
