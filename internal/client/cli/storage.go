package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/config"
	"github.com/dmitrijs2005/blogcli/internal/client/tokens"
	"github.com/dmitrijs2005/blogcli/internal/filex"
)

// openTokenStorage returns the backend selected by c.TokenStore, scoped to
// the origin of the API base URL, and a function that closes it.
func openTokenStorage(ctx context.Context, c *config.Config) (tokens.Storage, func() error, error) {
	baseURL, err := c.ResolveBaseURL()
	if err != nil {
		return nil, nil, err
	}
	scope := tokens.ScopeFromURL(baseURL)

	switch c.TokenStore {
	case config.TokenStoreRedis:
		rdb, err := tokens.NewRedisClient(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return tokens.NewRedisStorage(rdb, scope), rdb.Close, nil
	case config.TokenStoreSQLite, "":
		if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
			return nil, nil, err
		}
		db, err := tokens.OpenSQLite(ctx, c.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return tokens.NewSQLiteStorage(db, scope), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", c.TokenStore)
	}
}
