package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrWeakJWTSecret)
}

func TestLoad_RejectsPlaceholderSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "change-me")

	_, err := Load()
	assert.ErrorIs(t, err, ErrWeakJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 15, cfg.AccessTokenMin)
	assert.Equal(t, 14, cfg.RefreshTokenDay)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("ACCESS_TOKEN_MINUTES", "5")
	t.Setenv("REFRESH_TOKEN_DAYS", "30")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.AccessTokenMin)
	assert.Equal(t, 30, cfg.RefreshTokenDay)
}
