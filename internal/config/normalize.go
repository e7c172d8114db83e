package config

import "strings"

func Normalize(cfg *Config) {
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		switch cfg.Storage.Driver {
		case "sqlite":
			cfg.Storage.Path = DefaultStoragePath
		case "file":
			cfg.Storage.Path = DefaultFilePath
		}
	}

	if strings.TrimSpace(cfg.Explain.Model) == "" {
		cfg.Explain.Model = DefaultModel
	}
	if cfg.Explain.Timeout == 0 {
		cfg.Explain.Timeout = DefaultTimeout
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = DefaultAddr
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
}
