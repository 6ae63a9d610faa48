// Package bootstrap assembles the matching engine's fx graph: infrastructure
// first, then persistence, use cases, background workers and HTTP handlers.
package bootstrap

import (
	"github.com/Hunterii1/asl-market-sub001/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var infrastructure = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
)

// Application is everything above the database pool. Tests reuse it with
// their own config and pool.
var Application = fx.Options(
	components.PersistenceModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)

var Module = fx.Options(infrastructure, Application)
