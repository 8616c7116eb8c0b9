package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		OpenRouterAPIKey:  "sk-or-test",
		DatabaseURL:       "postgres://localhost/dayplan",
		Model:             "openrouter/deepseek/deepseek-v3.2-exp",
		MaxTokens:         2000,
		SchedulerInterval: 5 * time.Second,
		SchedulerEnabled:  true,
		FallbackStartHour: 9,
		FallbackDuration:  time.Hour,
		RetentionDays:     30,
		CleanupInterval:   12 * time.Hour,
		Host:              "0.0.0.0",
		Port:              5000,
		LogLevel:          "INFO",
		LogFormat:         LogFormatStandard,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("empty api key rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.OpenRouterAPIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("model without provider prefix rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Model = "deepseek-v3"
		assert.Error(t, cfg.Validate())
	})

	t.Run("scheduler interval boundaries", func(t *testing.T) {
		cfg := validConfig()
		cfg.SchedulerInterval = 0
		assert.Error(t, cfg.Validate())

		cfg.SchedulerInterval = 3601 * time.Second
		assert.Error(t, cfg.Validate())

		cfg.SchedulerInterval = 3600 * time.Second
		assert.NoError(t, cfg.Validate())

		cfg.SchedulerInterval = time.Second
		assert.NoError(t, cfg.Validate())
	})

	t.Run("fallback start hour boundaries", func(t *testing.T) {
		cfg := validConfig()
		cfg.FallbackStartHour = -1
		assert.Error(t, cfg.Validate())

		cfg.FallbackStartHour = 24
		assert.Error(t, cfg.Validate())

		cfg.FallbackStartHour = 0
		assert.NoError(t, cfg.Validate())

		cfg.FallbackStartHour = 23
		assert.NoError(t, cfg.Validate())
	})

	t.Run("fallback duration must be positive", func(t *testing.T) {
		cfg := validConfig()
		cfg.FallbackDuration = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("log format restricted", func(t *testing.T) {
		cfg := validConfig()
		cfg.LogFormat = "logfmt"
		assert.Error(t, cfg.Validate())

		cfg.LogFormat = LogFormatJSON
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.SchedulerInterval)
		assert.Equal(t, 9, cfg.FallbackStartHour)
		assert.Equal(t, time.Hour, cfg.FallbackDuration)
		assert.True(t, cfg.SchedulerEnabled)
		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, LogFormatStandard, cfg.LogFormat)
	})

	t.Run("missing api key fails", func(t *testing.T) {
		t.Setenv("OPENROUTER_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
		t.Setenv("SCHEDULER_INTERVAL_SECONDS", "60")
		t.Setenv("SCHEDULER_ENABLED", "false")
		t.Setenv("FALLBACK_START_HOUR", "7")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, time.Minute, cfg.SchedulerInterval)
		assert.False(t, cfg.SchedulerEnabled)
		assert.Equal(t, 7, cfg.FallbackStartHour)
		assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	})

	t.Run("malformed integer rejected", func(t *testing.T) {
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
		t.Setenv("SCHEDULER_INTERVAL_SECONDS", "often")

		_, err := Load()
		require.Error(t, err)
	})
}
