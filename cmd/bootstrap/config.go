package bootstrap

import (
	"log/slog"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(logPolicy),
)

// logPolicy records the switches that change matching behavior, so logs from
// an incident can be read against them.
func logPolicy(logger *slog.Logger, cfg config.Config) {
	logger.Info("matching policy",
		"visitor_capacity", cfg.Matching.VisitorCapacity,
		"enforce_capacity", cfg.Matching.EnforceCapacity,
		"allow_resubmission", cfg.Matching.AllowResubmission,
		"idempotency_ttl", cfg.Matching.IdempotencyTTL,
		"expiry_sweep_interval", cfg.Matching.ExpirySweepInterval,
		"notification_poll_interval", cfg.Notification.PollInterval,
		"notification_max_attempts", cfg.Notification.MaxAttempts,
	)
}
