package components

import (
	"github.com/Hunterii1/asl-market-sub001/internal/handler"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/api"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMatchingHandler,
		api.NewResponseHandler,
		api.NewRatingHandler,
		api.NewGateHandler,
		api.NewCapacityHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Matching *api.MatchingHandler
	Response *api.ResponseHandler
	Rating   *api.RatingHandler
	Gate     *api.GateHandler
	Capacity *api.CapacityHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Matching: p.Matching,
		Response: p.Response,
		Rating:   p.Rating,
		Gate:     p.Gate,
		Capacity: p.Capacity,
	}
}
