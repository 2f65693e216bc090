package tokens

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenSQLite_CreatesTokensTable(t *testing.T) {
	db := openDB(t)

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='tokens'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := openDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestSQLiteStorage_EmptyReadsAsBlank(t *testing.T) {
	s := NewSQLiteStorage(openDB(t), "http://127.0.0.1:8080")
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	rt, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, rt)
}

func TestSQLiteStorage_SetTokenUpserts(t *testing.T) {
	s := NewSQLiteStorage(openDB(t), "http://127.0.0.1:8080")
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "old"))
	require.NoError(t, s.SetToken(ctx, "new"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", tok)
}

func TestSQLiteStorage_RemoveDeletesBothKeys(t *testing.T) {
	db := openDB(t)
	s := NewSQLiteStorage(db, "http://127.0.0.1:8080")
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "t1"))
	_, err := db.Exec(`INSERT INTO tokens(scope, key, value) VALUES (?, ?, ?)`, "http://127.0.0.1:8080", KeyRefreshToken, "r1")
	require.NoError(t, err)

	rt, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "r1", rt)

	require.NoError(t, s.Remove(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	rt, err = s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, rt)

	// повторное удаление не должно падать
	require.NoError(t, s.Remove(ctx))
}

func TestSQLiteStorage_ScopesAreIsolated(t *testing.T) {
	db := openDB(t)
	a := NewSQLiteStorage(db, "https://blog.example.com")
	b := NewSQLiteStorage(db, "http://127.0.0.1:8080")
	ctx := context.Background()

	require.NoError(t, a.SetToken(ctx, "token-a"))

	tok, err := b.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, b.SetToken(ctx, "token-b"))
	require.NoError(t, b.Remove(ctx))

	tok, err = a.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-a", tok)
}

func TestSQLiteStorage_ErrorsWrapped(t *testing.T) {
	db := openDB(t)
	s := NewSQLiteStorage(db, "scope")
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := s.Token(ctx)
	require.ErrorContains(t, err, "failed to get token")

	err = s.SetToken(ctx, "x")
	require.ErrorContains(t, err, "failed to set token")

	require.ErrorContains(t, s.Remove(ctx), "failed to remove tokens")
}

func TestScopeFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://127.0.0.1:8080/api/v1", "http://127.0.0.1:8080"},
		{"HTTPS://Blog.Example.com/api", "https://blog.example.com"},
		{" /api/v1 ", "/api/v1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScopeFromURL(tt.in), tt.in)
	}
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "blogcli:http://127.0.0.1:8080:token", redisKey("http://127.0.0.1:8080", KeyToken))
}
