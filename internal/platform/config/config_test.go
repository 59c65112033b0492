package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("STORE_DRIVER", " Postgres ")
	v.Set("PGSQL_URL", "postgres://hr@localhost/hr")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("JWT_EXPIRY_DURATION", "90m")
	v.Set("API_KEY", "k")
	v.Set("API_KEY_LOOPBACK_BYPASS", false)
	v.Set("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://hr.local ,")
	v.Set("UPLOAD_MAX_BYTES", 1024)

	cfg := fromViper(v)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiryDuration)
	assert.False(t, cfg.APIKeyLoopbackBypass)
	assert.Equal(t, []string{"http://localhost:5173", "http://hr.local"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(1024), cfg.UploadMaxBytes)
}

func TestFromViper_FallsBack(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "cassandra")
	v.Set("JWT_EXPIRY_DURATION", "soon")

	cfg := fromViper(v)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "super-secret-key", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}
