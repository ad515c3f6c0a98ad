package config

import (
	_ "embed"
	"net/url"
	"strings"
	"time"

	apperrors "weblatedl/internal/errors"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes which Weblate component to mirror and which translations qualify.
type Config struct {
	BaseURL              string        `yaml:"base_url"`
	Project              string        `yaml:"project"`
	Component            string        `yaml:"component"`
	SourceLanguage       string        `yaml:"source_language"`
	MinTranslatedPercent float64       `yaml:"min_translated_percent"`
	Timeout              time.Duration `yaml:"timeout"`
	UserAgent            string        `yaml:"user_agent"`
	LogLevel             string        `yaml:"log_level"`
	LogFormat            string        `yaml:"log_format"`
}

// Log formats accepted by log_format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

// Default returns the embedded default configuration, normalised through Merge.
func Default() (*Config, error) {
	embedded, err := Parse(embeddedDefaults)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded defaults")
	}
	return Merge(&Config{}, embedded)
}

// Parse decodes YAML configuration data. Empty input yields an empty Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(data) == 0 {
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}
	return &cfg, nil
}

// Merge layers overrides on top of base. Zero-valued override fields are ignored,
// so a threshold of 0 cannot be set through Merge.
func Merge(base *Config, overrides ...*Config) (*Config, error) {
	if base == nil {
		return nil, errors.New("no base configuration provided")
	}

	result := *base
	for _, o := range overrides {
		if o == nil {
			continue
		}
		if v := strings.TrimSpace(o.BaseURL); v != "" {
			result.BaseURL = v
		}
		if v := strings.TrimSpace(o.Project); v != "" {
			result.Project = v
		}
		if v := strings.TrimSpace(o.Component); v != "" {
			result.Component = v
		}
		if v := strings.TrimSpace(o.SourceLanguage); v != "" {
			result.SourceLanguage = v
		}
		if o.MinTranslatedPercent > 0 {
			result.MinTranslatedPercent = o.MinTranslatedPercent
		}
		if o.Timeout > 0 {
			result.Timeout = o.Timeout
		}
		if v := strings.TrimSpace(o.UserAgent); v != "" {
			result.UserAgent = v
		}
		if v := strings.TrimSpace(o.LogLevel); v != "" {
			result.LogLevel = v
		}
		if v := strings.TrimSpace(o.LogFormat); v != "" {
			result.LogFormat = strings.ToLower(v)
		}
	}

	result.BaseURL = strings.TrimRight(strings.TrimSpace(result.BaseURL), "/")
	return &result, nil
}

// Validate checks that the configuration can address a Weblate component.
func (c *Config) Validate() error {
	if c == nil {
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "configuration is required", nil)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "base_url must be an absolute URL", err).
			WithField("base_url", c.BaseURL)
	}
	if strings.TrimSpace(c.Project) == "" {
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "project is required", nil)
	}
	if strings.TrimSpace(c.Component) == "" {
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "component is required", nil)
	}
	if c.MinTranslatedPercent < 0 || c.MinTranslatedPercent > 100 {
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "min_translated_percent must be between 0 and 100", nil).
			WithField("min_translated_percent", c.MinTranslatedPercent)
	}
	if c.Timeout < 0 {
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "timeout must not be negative", nil).
			WithField("timeout", c.Timeout.String())
	}
	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return apperrors.ConfigError(apperrors.CodeConfigGeneric, "log_format must be text or json", nil).
			WithField("log_format", c.LogFormat)
	}

	return nil
}
