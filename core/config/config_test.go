package config_test

import (
	"testing"

	"preekrooster/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Database.Host = "localhost"
	cfg.Database.Name = "kerk"
	cfg.Database.Query = "SELECT id, datum, tijd, titel, voorganger, collecte1, collecte2, collecte3 FROM rooster"
	cfg.Liturgy.URL = "https://example.org/liturgie.pdf"
	return cfg
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidateRejectsMissingSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown provider", func(c *config.Config) { c.Calendar.Provider = "caldav" }},
		{"no database host", func(c *config.Config) { c.Database.Host = "" }},
		{"no query", func(c *config.Config) { c.Database.Query = "" }},
		{"no liturgy url", func(c *config.Config) { c.Liturgy.URL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "google", cfg.Calendar.Provider)
	assert.Equal(t, "Europe/Amsterdam", cfg.Calendar.Timezone)
	assert.Equal(t, "5 0 * * *", cfg.Schedule.Daily)
	assert.Equal(t, "30 9 * * 0", cfg.Schedule.Weekly)
	assert.Equal(t, "8080", cfg.Server.Port)
}
