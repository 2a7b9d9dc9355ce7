package datastores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// TextSQLite implements [TextStore] with one row per blob.
type TextSQLite struct {
	db *sql.DB
}

var _ TextStore = (*TextSQLite)(nil)

const textSQLiteSchema = `CREATE TABLE IF NOT EXISTS text_blobs (
	name TEXT PRIMARY KEY,
	text TEXT NOT NULL
)`

// OpenTextSQLite opens or creates the database at path.
func OpenTextSQLite(ctx context.Context, path string) (*TextSQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.ExecContext(ctx, textSQLiteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &TextSQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *TextSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *TextSQLite) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *TextSQLite) Exists(ctx context.Context, name string) bool {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM text_blobs WHERE name = ?`, name).Scan(&one)
	return err == nil
}

func (s *TextSQLite) ReadAllText(ctx context.Context, name string) (string, error) {
	var text string
	err := s.db.QueryRowContext(ctx, `SELECT text FROM text_blobs WHERE name = ?`, name).Scan(&text)
	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, name)
	default:
		return "", fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}
}

func (s *TextSQLite) WriteAllText(ctx context.Context, name, text string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO text_blobs (name, text) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET text = excluded.text`,
		name, text,
	)
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, name, err)
	}
	return nil
}
