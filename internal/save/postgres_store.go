// internal/save/postgres_store.go
package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
)

// PostgresStore keeps saves as text blobs in the world_saves table.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStore connects and makes sure the schema exists.
func NewPostgresStore(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	store := &PostgresStore{db: db, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS world_saves (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *PostgresStore) Write(ctx context.Context, name string, data []byte) error {
	if err := validName(name); err != nil {
		return err
	}
	const query = `
	INSERT INTO world_saves (name, data)
	VALUES ($1, $2)
	ON CONFLICT (name)
	DO UPDATE SET data = $2, updated_at = NOW()`
	if _, err := s.db.ExecContext(ctx, query, name, string(data)); err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	s.logger.Debug("save written", zap.String("name", name), zap.Int("bytes", len(data)))
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM world_saves WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load world: %w", err)
	}
	return []byte(data), nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	s.logger.Info("closing save database")
	return s.db.Close()
}
