package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, BackendStub, cfg.Backend)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, 0.0, cfg.Temperature)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_AppliesOptions(t *testing.T) {
	cfg := NewConfig(
		WithBackend(BackendOpenAI),
		WithHost("http://localhost:9100"),
		WithModel("gpt-4o-mini"),
		WithAPIToken("secret"),
		WithMaxTokens(128),
		WithTemperature(0.2),
		WithTimeout(10*time.Second),
	)

	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.Equal(t, "http://localhost:9100", cfg.Host)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, 128, cfg.MaxTokens)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestNormalize_AddsV1Suffix(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestNormalize_DefaultsEmptyToken(t *testing.T) {
	cfg := &Config{Host: "http://localhost:11434"}
	cfg.Normalize()
	assert.Equal(t, "none", cfg.APIToken)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend = "huggingface" }, true},
		{"stub ignores missing model", func(c *Config) { c.Backend = BackendStub; c.Model = "" }, false},
		{"openai needs host", func(c *Config) { c.Backend = BackendOpenAI; c.Host = "" }, true},
		{"openai needs model", func(c *Config) { c.Backend = BackendOpenAI; c.Model = "" }, true},
		{"openai needs positive max tokens", func(c *Config) { c.Backend = BackendOpenAI; c.MaxTokens = 0 }, true},
		{"negative temperature", func(c *Config) { c.Backend = BackendOpenAI; c.Temperature = -0.1 }, true},
		{"zero timeout", func(c *Config) { c.Backend = BackendOpenAI; c.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
