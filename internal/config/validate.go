package config

import (
	"errors"
	"fmt"
)

func Validate(cfg Config) error {
	var errs []error

	switch cfg.Storage.Driver {
	case "sqlite", "file", "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q must be sqlite, file or memory", cfg.Storage.Driver))
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		errs = append(errs, fmt.Errorf("ui.mode %q must be auto, live or plain", cfg.UI.Mode))
	}

	if cfg.Explain.Timeout < 0 {
		errs = append(errs, fmt.Errorf("explain.timeout must not be negative"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
