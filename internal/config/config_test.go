package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_USER", "dash")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/dash")
	t.Setenv("HEALTH_ACTIVE_DAYS", "45")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.se,https://b.se")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "postgres://dash:secret@db:5432/dash", cfg.Database.DSN)
	assert.Equal(t, []string{"https://a.se", "https://b.se"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, 45, cfg.Health.ActiveDays)
	assert.Equal(t, 90, cfg.Health.AtRiskDays)
	assert.Equal(t, 15, cfg.Health.MaxRows)
	assert.Equal(t, 0.5, cfg.Health.AtRiskDecay)

	assert.Equal(t, "https://api.fortnox.se/3", cfg.Fortnox.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.FortnoxTimeout())
	assert.Equal(t, 2*time.Minute, cfg.Fortnox.ExportLockTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)

	assert.Equal(t, 25, cfg.Invoicing.DefaultVATPercent)
	assert.Equal(t, 30, cfg.Invoicing.DefaultPaymentTermsDays)
	assert.Equal(t, "0 5 1 * *", cfg.MonthlyRevenueSync.CronSchedule)
	assert.Equal(t, 4, cfg.MonthlyRevenueSync.MaxConcurrentJobs)
	assert.Equal(t, 1, cfg.MonthlyRevenueSync.MonthLookBack)
}
