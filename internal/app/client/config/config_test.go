package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordbook/internal/domain/record"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "SERVER_ADDRESS", "ENABLE_TLS", "COLLECTION", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, "texts", cfg.Collection)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", "records.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("COLLECTION", "notes")
	t.Setenv("APP_ENV", "local")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://records.example.com", cfg.BaseURL())
	assert.Equal(t, "notes", cfg.Collection)
	assert.Equal(t, "local", cfg.Env)
}

func TestLoad_InvalidCollection(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLLECTION", "no/slashes")

	_, err := Load(viper.New())
	assert.ErrorIs(t, err, record.ErrInvalidCollection)
}

func TestLoad_OverrideViaViper(t *testing.T) {
	clearEnv(t)
	v := viper.New()
	v.Set("SERVER_ADDRESS", "10.0.0.5:9000")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", cfg.BaseURL())
}
