package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, "4000", cfg.App.Port)
	assert.Equal(t, 144*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, 10, cfg.Security.SaltRounds)
	assert.Equal(t, 3, cfg.Payment.MaxRetries)
	assert.Equal(t, "SWARN AABHUSHAN", cfg.Brand.Name)
	assert.Equal(t, "assets/brand_logo.png", cfg.Invoice.LogoPath)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SALT_ROUNDS", "12")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BRAND_GSTIN", "23AAAAA0000A1Z5")

	cfg := Load()

	assert.Equal(t, 12, cfg.Security.SaltRounds)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "23AAAAA0000A1Z5", cfg.Brand.GSTIN)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", Name: "swarn", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=swarn port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
