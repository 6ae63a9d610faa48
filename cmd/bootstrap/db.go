package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Hunterii1/asl-market-sub001/internal/infra/db"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool on construction and closes it after the workers and
// the server have stopped, since fx runs OnStop hooks in reverse order.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool closing",
				"acquired", stat.AcquiredConns(),
				"total", stat.TotalConns(),
				"acquire_count", stat.AcquireCount())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
