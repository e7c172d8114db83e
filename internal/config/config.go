package config

import (
	"errors"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultStorageDriver = "sqlite"
	DefaultStoragePath   = "glassquiz.db"
	DefaultFilePath      = "glassquiz.json"
	DefaultModel         = "gemini-2.5-flash"
	DefaultTimeout       = 15 * time.Second
	DefaultAddr          = ":8080"
	DefaultUIMode        = "auto"
)

type Config struct {
	Banks   BanksConfig   `yaml:"banks"`
	Storage StorageConfig `yaml:"storage"`
	Explain ExplainConfig `yaml:"explain"`
	Server  ServerConfig  `yaml:"server"`
	UI      UIConfig      `yaml:"ui"`
}

// BanksConfig points at raw bank files. Empty paths use the embedded banks.
type BanksConfig struct {
	Single  string `yaml:"single"`
	Multi   string `yaml:"multi"`
	Boolean string `yaml:"boolean"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ExplainConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns a normalized config with every default filled in.
func Default() Config {
	var cfg Config
	Normalize(&cfg)
	return cfg
}
