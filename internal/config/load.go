package config

import (
	"fmt"
	"os"
	"strings"
)

// Load reads the config file at path, applies environment overrides, then
// normalizes and validates the result. An empty path skips the file.
func Load(path string, getenv func(string) string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	}

	ApplyEnv(&cfg, getenv)
	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with non-empty environment variables.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(name string) string {
		return strings.TrimSpace(getenv(name))
	}

	if addr := lookup("ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if driver := lookup("QUIZ_STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if path := lookup("QUIZ_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if key := lookup("GEMINI_API_KEY"); key != "" {
		cfg.Explain.APIKey = key
	} else if key := lookup("API_KEY"); key != "" {
		cfg.Explain.APIKey = key
	}
	if model := lookup("GEMINI_MODEL"); model != "" {
		cfg.Explain.Model = model
	}
}
