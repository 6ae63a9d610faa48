package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/Hunterii1/asl-market-sub001/cmd/bootstrap"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func init() {
	// release unless GIN_MODE says otherwise, so a missing variable never enables debug output
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           ASL Market Matching API
// @version         1.0
// @description     Supplier and visitor matching: requests, responses, capacity, chat and rating gates.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func newHTTPServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("http server listening", slog.String("addr", srv.Addr), slog.String("mode", gin.Mode()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errs.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", slog.Any("error", err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(func() *gin.Engine { return gin.New() }, newHTTPServer),
		// forces construction of the server and its lifecycle hook
		fx.Invoke(func(*http.Server) {}),
	)
	app.Run()
}
