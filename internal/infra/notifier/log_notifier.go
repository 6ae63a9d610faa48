package notifier

import (
	"context"
	"log/slog"

	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"
)

// LogNotifier writes every job to the structured log. It stands in for the
// push and chat transports, which live outside this service.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, job shared.NotificationJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "notification dispatched",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"attempt", job.Attempts+1,
		"payload", string(job.Payload))
	return nil
}
