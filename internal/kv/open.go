package kv

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend string
	Path    string // sqlite database file
	Redis   RedisOptions
}

// Open returns the Store named by opts.Backend
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
		return NewSQLite(opts.Path)
	case BackendRedis:
		return NewRedis(ctx, opts.Redis)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Errorf("unknown storage backend: %s", opts.Backend)
	}
}
