//go:build e2e

// Package e2e runs the full HTTP stack against a real Postgres in a container.
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/cmd/bootstrap"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots the application once per suite. Every subtest starts
// from a truncated database with the reference data reseeded.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbCfg := createDatabase(t, startPostgres(t))
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

// startApp wires the production graph around a test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.Application,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("stop application: %v", err)
		}
		pool.Close()
	})
	return router
}
