package storage

import (
	"context"
	"fmt"
	"strings"

	"glassquiz/internal/quiz"
	"glassquiz/internal/quiz/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Backend is an opened persistence backend. Results is nil for drivers that
// do not keep a session history.
type Backend struct {
	KV      KV
	Results quiz.ResultRepository
	close   func() error
}

func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// Open selects the backend for driver. An empty driver means sqlite.
func Open(ctx context.Context, driver, path string) (*Backend, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		store, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &Backend{KV: store, Results: store, close: store.Close}, nil
	case DriverFile:
		return &Backend{KV: NewFileKV(path)}, nil
	case DriverMemory:
		return &Backend{KV: NewMemoryKV()}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
