package config

import (
	"testing"
	"time"

	apperrors "weblatedl/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesScriptBehaviour(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "https://hosted.weblate.org", cfg.BaseURL)
	assert.Equal(t, "tor", cfg.Project)
	assert.Equal(t, "rdsys", cfg.Component)
	assert.Equal(t, "en", cfg.SourceLanguage)
	assert.Equal(t, 90.0, cfg.MinTranslatedPercent)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("base_url: [unterminated"))
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	cfg, err := Parse([]byte("timeout: 90s\n"))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestMergeOverrides(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)

	override, err := Parse([]byte("base_url: http://127.0.0.1:8080/\ncomponent: bridgedb\nmin_translated_percent: 75\n"))
	require.NoError(t, err)

	merged, err := Merge(base, nil, override)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", merged.BaseURL)
	assert.Equal(t, "bridgedb", merged.Component)
	assert.Equal(t, 75.0, merged.MinTranslatedPercent)
	assert.Equal(t, "tor", merged.Project)
	assert.Equal(t, "en", merged.SourceLanguage)

	assert.Equal(t, "rdsys", base.Component, "base must not be mutated")
}

func TestMergeNormalisesBaseURLAndLogFormat(t *testing.T) {
	merged, err := Merge(&Config{}, &Config{BaseURL: " https://weblate.example.org/ ", LogFormat: "JSON"})
	require.NoError(t, err)

	assert.Equal(t, "https://weblate.example.org", merged.BaseURL)
	assert.Equal(t, LogFormatJSON, merged.LogFormat)
}

func TestMergeRequiresBase(t *testing.T) {
	_, err := Merge(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Default()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative base url", func(c *Config) { c.BaseURL = "hosted.weblate.org" }},
		{"missing project", func(c *Config) { c.Project = " " }},
		{"missing component", func(c *Config) { c.Component = "" }},
		{"threshold above 100", func(c *Config) { c.MinTranslatedPercent = 101 }},
		{"negative threshold", func(c *Config) { c.MinTranslatedPercent = -1 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.HasCategory(err, apperrors.ErrCategoryConfig))
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
