package bootstrap

import (
	"log/slog"

	"github.com/Hunterii1/asl-market-sub001/internal/handler/middleware"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
		newSlogLogger,
	),
)

// newSlogLogger installs the access logger's handler as the process default,
// so package level slog calls and the fx event log share one sink.
func newSlogLogger(access *middleware.Logger) *slog.Logger {
	logger := access.GetSlogLogger().With(slog.String("service", "matching-engine"))
	slog.SetDefault(logger)
	return logger
}
