package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/api"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/middleware"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
)

// route is one endpoint; mw runs before handler and may abort.
type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
	mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Auth     *api.AuthHandler
	Matching *api.MatchingHandler
	Response *api.ResponseHandler
	Rating   *api.RatingHandler
	Gate     *api.GateHandler
	Capacity *api.CapacityHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	supplierOnly := authMiddleware.RequireRole(user.RoleSupplier)
	visitorOnly := authMiddleware.RequireRole(user.RoleVisitor)
	capacityViewers := authMiddleware.RequireRole(user.RoleSupplier, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{method: http.MethodPost, path: "/login", handler: h.Auth.Login},
				{method: http.MethodPost, path: "/refresh", handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{method: http.MethodPost, path: "/logout", handler: h.Auth.Logout},
				{method: http.MethodGet, path: "/me", handler: h.Auth.Me},
			})
		}

		matching := apiGroup.Group("/matching")
		matching.Use(authMiddleware.RequireAuth())
		{
			addRoutes(matching.Group("/requests"), []route{
				{method: http.MethodPost, path: "", handler: h.Matching.Create, mw: []gin.HandlerFunc{supplierOnly}},
				{method: http.MethodGet, path: "/mine", handler: h.Matching.ListMine, mw: []gin.HandlerFunc{supplierOnly}},
				{method: http.MethodGet, path: "/available", handler: h.Matching.ListAvailable, mw: []gin.HandlerFunc{visitorOnly}},
				{method: http.MethodGet, path: "/:id", handler: h.Matching.Get},
				{method: http.MethodPut, path: "/:id", handler: h.Matching.Update, mw: []gin.HandlerFunc{supplierOnly}},
				{method: http.MethodDelete, path: "/:id", handler: h.Matching.Cancel, mw: []gin.HandlerFunc{supplierOnly}},
				{method: http.MethodPost, path: "/:id/close", handler: h.Matching.Close},
				{method: http.MethodPost, path: "/:id/extend", handler: h.Matching.Extend, mw: []gin.HandlerFunc{supplierOnly}},
				{method: http.MethodPost, path: "/:id/respond", handler: h.Response.Respond, mw: []gin.HandlerFunc{visitorOnly}},
				{method: http.MethodGet, path: "/:id/responses", handler: h.Response.ListByRequest},
				{method: http.MethodGet, path: "/:id/responses/mine", handler: h.Response.GetMine, mw: []gin.HandlerFunc{visitorOnly}},
				{method: http.MethodPost, path: "/:id/rating", handler: h.Rating.Submit},
				{method: http.MethodGet, path: "/:id/rating-eligibility", handler: h.Gate.RatingEligibility},
				{method: http.MethodGet, path: "/:id/chat-access", handler: h.Gate.ChatAccess},
			})

			addRoutes(matching.Group("/visitors"), []route{
				{method: http.MethodGet, path: "/capacity", handler: h.Capacity.List, mw: []gin.HandlerFunc{capacityViewers}},
				{method: http.MethodGet, path: "/capacity/near", handler: h.Capacity.Near, mw: []gin.HandlerFunc{capacityViewers}},
				{method: http.MethodGet, path: "/:id/capacity", handler: h.Capacity.ForVisitor},
			})

			addRoutes(matching.Group("/users"), []route{
				{method: http.MethodGet, path: "/:id/ratings", handler: h.Rating.ListForUser},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.method, r.path, append(slices.Clone(r.mw), r.handler)...)
	}
}
