package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// NOTE: This file provides the configuration model and full YAML-based
// load/save behavior, including first-run config creation and 0600
// permissions. API keys may also come from the environment (or a .env
// file), which always wins over the YAML value.

// BackendConfig holds connection settings for the backend-as-a-service
// platform (document store, blob store, auth).
type BackendConfig struct {
	// BaseURL is the platform's REST endpoint, e.g. "https://api.example.dev/v1".
	BaseURL string `yaml:"base_url" json:"base_url"`
	// APIKey authenticates every request.
	APIKey string `yaml:"api_key" json:"api_key"`
	// Project scopes collections and blobs, if the platform requires one.
	Project string `yaml:"project,omitempty" json:"project,omitempty"`
	// WatchCron is a cron-style schedule used for document snapshot polling
	// (e.g. "@every 30s").
	WatchCron string `yaml:"watch_cron" json:"watch_cron"`
}

// PlacesConfig holds settings for the places-search API.
type PlacesConfig struct {
	APIKey string `yaml:"api_key" json:"api_key"`
}

// TextGenConfig holds settings for the text-generation API.
type TextGenConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	APIKey  string `yaml:"api_key" json:"api_key"`
	// Model is the default model used for completions and chat.
	Model string `yaml:"model" json:"model"`
}

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA timezone used as the default display zone
	// when a command does not pass one explicitly (e.g. "Europe/Madrid").
	Timezone string `yaml:"timezone" json:"timezone"`

	// Locale is the default locale for formatted output (e.g. "es").
	Locale string `yaml:"locale" json:"locale"`

	Backend BackendConfig `yaml:"backend" json:"backend"`
	Places  PlacesConfig  `yaml:"places" json:"places"`
	TextGen TextGenConfig `yaml:"textgen" json:"textgen"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone: "Europe/Madrid",
		Locale:   "es",
		Backend: BackendConfig{
			WatchCron: "@every 30s",
		},
		TextGen: TextGenConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o-mini",
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "Europe/Madrid"
	}
	if c.Locale == "" {
		c.Locale = "es"
	}
	if c.Backend.WatchCron == "" {
		c.Backend.WatchCron = "@every 30s"
	}
	if c.TextGen.BaseURL == "" {
		c.TextGen.BaseURL = "https://api.openai.com/v1"
	}
	if c.TextGen.Model == "" {
		c.TextGen.Model = "gpt-4o-mini"
	}
}

// applyEnv overlays secrets from the environment. A .env file in the
// working directory is honored if present; real environment variables win.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("TRIPKIT_BACKEND_API_KEY"); v != "" {
		c.Backend.APIKey = v
	}
	if v := os.Getenv("TRIPKIT_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("TRIPKIT_PLACES_API_KEY"); v != "" {
		c.Places.APIKey = v
	}
	if v := os.Getenv("TRIPKIT_TEXTGEN_API_KEY"); v != "" {
		c.TextGen.APIKey = v
	}
	if v := os.Getenv("TRIPKIT_TEXTGEN_URL"); v != "" {
		c.TextGen.BaseURL = v
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults and apply environment overrides
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	cfg.applyEnv()

	return &cfg, nil
}

// Save writes the given configuration to the specified path, creating the
// parent directory (0700) as needed. The file is replaced atomically and
// ends up with 0600 permissions since it may carry API keys.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return replaceFile(dir, path, data)
}

// replaceFile swaps path's contents through a same-directory temp file so
// a crash mid-write never leaves a torn config behind.
func replaceFile(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tripkit-*.yaml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, werr := tmp.Write(data)
	if werr == nil {
		werr = tmp.Chmod(0o600)
	}
	if werr == nil {
		werr = tmp.Sync()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}

	return os.Rename(tmp.Name(), path)
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
