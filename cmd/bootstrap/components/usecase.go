package components

import (
	"github.com/Hunterii1/asl-market-sub001/internal/infra/notifier"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPolicy,
	fx.Annotate(
		notifier.NewLogNotifier,
		fx.As(new(commands.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewMatchingCommands,
		commands.NewResponseCommands,
		commands.NewRatingCommands,
		commands.NewExpiryCommands,
		NewOutboxCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewMatchingQueries,
		queries.NewResponseQueries,
		queries.NewRatingQueries,
		queries.NewGateQueries,
		NewCapacityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPolicy(cfg config.Config) commands.Policy {
	return commands.Policy{
		VisitorCapacity:   cfg.Matching.VisitorCapacity,
		EnforceCapacity:   cfg.Matching.EnforceCapacity,
		AllowResubmission: cfg.Matching.AllowResubmission,
		IdempotencyTTL:    cfg.Matching.IdempotencyTTL,
	}
}

func NewOutboxCommands(uow shared.UnitOfWork, n commands.Notifier, clk clock.Clock, cfg config.Config) commands.OutboxCommands {
	return commands.NewOutboxCommands(uow, n, clk, cfg.Notification.MaxAttempts, cfg.Notification.RetryBase)
}

func NewCapacityQueries(store queries.CapacityReadStore, clk clock.Clock, cfg config.Config) queries.CapacityQueries {
	return queries.NewCapacityQueries(store, cfg.Matching.VisitorCapacity, clk)
}
