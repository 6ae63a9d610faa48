package components

import (
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(registerWorkers),
)

func registerWorkers(lc fx.Lifecycle, cfg config.Config, expiry commands.ExpiryCommands, outbox commands.OutboxCommands) {
	for _, r := range []*worker.Runner{
		worker.NewExpirySweeper(expiry, cfg.Matching),
		worker.NewOutboxDispatcher(outbox, cfg.Notification),
	} {
		lc.Append(fx.Hook{
			OnStart: r.Start,
			OnStop:  r.Stop,
		})
	}
}
