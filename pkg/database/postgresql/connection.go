package postgresql

import (
	"context"
	"fmt"

	"gearguard/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the shared connection pool. The pool is the only process-wide
// handle to the store: constructed here, injected everywhere, closed by main.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	// All GearGuard tables live in the app schema.
	poolCfg.ConnConfig.RuntimeParams["search_path"] = "app, public"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}
