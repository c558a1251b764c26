package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	// DevMode enables the prompt history store and the history view.
	DevMode bool `yaml:"dev_mode,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Model:    "gemini-1.5-flash",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptsynth"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// HistoryPath is where the dev-mode prompt history CSV lives.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prompt_history.csv"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file and applies environment overrides.
// Returns (nil, nil) when no file exists and no credential is set in the
// environment, which routes the app to the setup wizard.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg *Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		// Env-only setup still works headless.
		if os.Getenv("GEMINI_API_KEY") != "" {
			cfg = DefaultConfig()
		}
	default:
		return nil, err
	}

	if cfg == nil {
		return nil, nil
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PROMPTSYNTH_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("PROMPTSYNTH_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && cfg.Provider == "gemini" {
		cfg.APIKey = v
	}
	if os.Getenv("APP_MODE") == "dev" {
		cfg.DevMode = true
	}
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
