// internal/save/store.go
package save

import (
	"context"
	"fmt"
	"strings"

	"initerse/internal/config"

	"go.uber.org/zap"
)

// Store keeps encoded saves under a name.
type Store interface {
	Write(ctx context.Context, name string, data []byte) error
	// Read returns ErrNotFound for names that were never written.
	Read(ctx context.Context, name string) ([]byte, error)
	Close() error
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid save name %q", name)
	}
	return nil
}

// Open creates the store selected by the settings.
func Open(ctx context.Context, s config.SaveSettings, logger *zap.Logger) (Store, error) {
	switch s.Backend {
	case config.StoreFile, "":
		return NewFileStore(s.Dir, logger)
	case config.StorePostgres:
		return NewPostgresStore(ctx, s.PostgresDSN, logger)
	}
	return nil, fmt.Errorf("unknown save backend %q", s.Backend)
}
