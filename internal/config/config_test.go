package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UPLOAD_URL_TTL", "")
	t.Setenv("STORAGE_DRIVER", "minio")

	cfg := Load()
	assert.Equal(t, "minio", cfg.StorageDriver)
	assert.Equal(t, 900*time.Second, cfg.UploadURLTTL)
	assert.Equal(t, "auto", cfg.R2.Region)
}

func TestLoadUploadTTL(t *testing.T) {
	t.Setenv("UPLOAD_URL_TTL", "60")
	assert.Equal(t, time.Minute, Load().UploadURLTTL)

	t.Setenv("UPLOAD_URL_TTL", "-5")
	assert.Equal(t, 900*time.Second, Load().UploadURLTTL)
}

func TestCorsConfigOrigins(t *testing.T) {
	opts := CorsConfig("http://a.test, http://b.test,,")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, opts.AllowedOrigins)
	assert.True(t, opts.AllowCredentials)
}
