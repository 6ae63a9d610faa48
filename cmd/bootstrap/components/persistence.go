package components

import (
	"github.com/Hunterii1/asl-market-sub001/internal/infra/readstore"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/uow"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule exposes the read side as query ports and the write side as
// a unit of work. Write repositories are created per transaction inside it.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		newSQLQueries,
		newDBTX,
		// one sqlc.Queries serves every read store through its narrow interface
		fx.Annotate(
			newSQLQueries,
			fx.As(
				new(readstore.MatchingRequestViewQueries),
				new(readstore.ResponseViewQueries),
				new(readstore.RatingViewQueries),
				new(readstore.CapacityViewQueries),
				new(readstore.UserReadQueries),
			),
		),
		fx.Annotate(readstore.NewMatchingRequestReadStore, fx.As(new(queries.MatchingRequestReadStore))),
		fx.Annotate(readstore.NewResponseReadStore, fx.As(new(queries.ResponseReadStore))),
		fx.Annotate(readstore.NewRatingReadStore, fx.As(new(queries.RatingReadStore))),
		fx.Annotate(readstore.NewCapacityReadStore, fx.As(new(queries.CapacityReadStore))),
		fx.Annotate(readstore.NewUserReadStore, fx.As(new(queries.UserReadStore))),
		uow.NewPostgresUoW,
	),
)

func newSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func newDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
