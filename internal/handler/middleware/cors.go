package middleware

import (
	"log/slog"
	"slices"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// NewCORSMiddleware builds the browser policy for the marketplace frontend.
// A "*" origin opens the API to any site, and cookies are then never sent.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, wildcardOrigin) {
		policy.AllowAllOrigins = true
		policy.AllowCredentials = false
	} else {
		policy.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("cors policy",
		slog.Any("origins", cfg.AllowOrigins),
		slog.Bool("credentials", policy.AllowCredentials),
		slog.Any("expose", policy.ExposeHeaders),
	)
	return cors.New(policy)
}
