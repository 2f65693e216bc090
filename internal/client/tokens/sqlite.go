package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/migrations"
	"github.com/dmitrijs2005/blogcli/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the client database at dsn and
// brings its schema up to date.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}

type SQLiteStorage struct {
	db    *sql.DB
	scope string
}

func NewSQLiteStorage(db *sql.DB, scope string) *SQLiteStorage {
	return &SQLiteStorage{db: db, scope: scope}
}

func (s *SQLiteStorage) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, KeyToken)
}

func (s *SQLiteStorage) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, KeyRefreshToken)
}

func (s *SQLiteStorage) SetToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (scope, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.scope, KeyToken, token)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", KeyToken, err)
	}
	return nil
}

// Remove deletes token and refresh token in one transaction.
func (s *SQLiteStorage) Remove(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		err := dbx.ExecEach(ctx, tx, `DELETE FROM tokens WHERE scope = ? AND key = ?`,
			[]any{s.scope, KeyToken},
			[]any{s.scope, KeyRefreshToken},
		)
		if err != nil {
			return fmt.Errorf("failed to remove tokens: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStorage) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM tokens WHERE scope = ? AND key = ?`, s.scope, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}
