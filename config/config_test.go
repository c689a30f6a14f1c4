package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, uint64(50), cfg.MongoMaxPool)
	assert.Equal(t, uint64(0), cfg.MongoMinPool)
	assert.Equal(t, 10*time.Second, cfg.MongoTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Empty(t, cfg.Media.Provider)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_MAX_POOL", "12")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MEDIA_PROVIDER", "MinIO")
	t.Setenv("MEDIA_BUCKET", "absss-media")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, uint64(12), cfg.MongoMaxPool)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "minio", cfg.Media.Provider)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoad_NonPositivePool(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_MAX_POOL", "-1")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_MAX_POOL must be positive")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{JWTSecret: "x", MongoMaxPool: 1, JWTTTL: time.Hour, Media: MediaConfig{Provider: "ftp"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEDIA_PROVIDER")
}
