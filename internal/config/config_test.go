package config

import (
	"testing"
)

func TestApplyEnvOverrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		start   *Config
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "dev mode on",
			env:  map[string]string{"APP_MODE": "dev"},
			start: DefaultConfig(),
			check: func(t *testing.T, cfg *Config) {
				if !cfg.DevMode {
					t.Error("APP_MODE=dev did not enable DevMode")
				}
			},
		},
		{
			name:  "dev mode off for other values",
			env:   map[string]string{"APP_MODE": "production"},
			start: DefaultConfig(),
			check: func(t *testing.T, cfg *Config) {
				if cfg.DevMode {
					t.Error("APP_MODE=production enabled DevMode")
				}
			},
		},
		{
			name:  "gemini key from env",
			env:   map[string]string{"GEMINI_API_KEY": "test-key-123"},
			start: DefaultConfig(),
			check: func(t *testing.T, cfg *Config) {
				if cfg.APIKey != "test-key-123" {
					t.Errorf("APIKey = %q, want test-key-123", cfg.APIKey)
				}
			},
		},
		{
			name:  "gemini key ignored for other providers",
			env:   map[string]string{"GEMINI_API_KEY": "test-key-123"},
			start: &Config{Provider: "openai", APIKey: "sk-original"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.APIKey != "sk-original" {
					t.Errorf("APIKey = %q, want sk-original", cfg.APIKey)
				}
			},
		},
		{
			name:  "provider and model override",
			env:   map[string]string{"PROMPTSYNTH_PROVIDER": "ollama", "PROMPTSYNTH_MODEL": "qwen2.5:7b"},
			start: DefaultConfig(),
			check: func(t *testing.T, cfg *Config) {
				if cfg.Provider != "ollama" {
					t.Errorf("Provider = %q, want ollama", cfg.Provider)
				}
				if cfg.Model != "qwen2.5:7b" {
					t.Errorf("Model = %q, want qwen2.5:7b", cfg.Model)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"APP_MODE", "GEMINI_API_KEY", "PROMPTSYNTH_PROVIDER", "PROMPTSYNTH_MODEL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := tt.start
			applyEnv(cfg)
			tt.check(t, cfg)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Model != "gemini-1.5-flash" {
		t.Errorf("default model = %q, want gemini-1.5-flash", cfg.Model)
	}
	if cfg.DevMode {
		t.Error("default config has DevMode on")
	}
}

func TestGetProvider(t *testing.T) {
	p := GetProvider("gemini")
	if p == nil {
		t.Fatal("GetProvider(gemini) = nil")
	}
	if !p.NeedsAPIKey {
		t.Error("gemini should need an API key")
	}

	if GetProvider("nonexistent") != nil {
		t.Error("GetProvider(nonexistent) should return nil")
	}
}
