//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/infra/db"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/tests/common/dbtest"

	"github.com/cenkalti/backoff/v4"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// postgresServer is one throwaway Postgres per test process. Each suite gets
// its own database inside it.
type postgresServer struct {
	host string
	port string
}

func (p postgresServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, p.host, p.port, database)
}

func startPostgres(t *testing.T) postgresServer {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, pgErr, "start postgres container")

	ctx := context.Background()
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	return postgresServer{host: host, port: port.Port()}
}

func postgresRequest() testcontainers.ContainerRequest {
	// durability is irrelevant for a tmpfs database that lives for one run
	settings := []string{
		"fsync=off",
		"full_page_writes=off",
		"synchronous_commit=off",
		"shared_buffers=256MB",
		"max_connections=200",
		"log_statement=none",
	}
	cmd := []string{"postgres"}
	for _, s := range settings {
		cmd = append(cmd, "-c", s)
	}

	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs:  map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:    cmd,
		Labels: map[string]string{"purpose": "asl-market-e2e"},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return postgresServer{host: host, port: port.Port()}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
	}
}

// createDatabase provisions a fresh schema-loaded database and drops it when the test ends.
func createDatabase(t *testing.T, server postgresServer) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin := server.dsn("postgres")

	require.NoError(t, withAdmin(admin, func(ctx context.Context, pool *pgxpool.Pool) error {
		// CREATE DATABASE races on the template lock when suites start together.
		create := func() error {
			_, err := pool.Exec(ctx, "CREATE DATABASE "+name)
			return err
		}
		policy := backoff.NewExponentialBackOff()
		policy.InitialInterval = 250 * time.Millisecond
		return backoff.Retry(create, backoff.WithContext(backoff.WithMaxRetries(policy, 4), ctx))
	}), "create database %s", name)

	t.Cleanup(func() {
		err := withAdmin(admin, func(ctx context.Context, pool *pgxpool.Pool) error {
			_, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
			return err
		})
		if err != nil {
			slog.Warn("drop e2e database", slog.String("database", name), slog.Any("error", err))
		}
	})

	cfg := config.DBConfig{
		Host:     server.host,
		Port:     server.port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
	pool, _, err := db.Connect(cfg)
	require.NoError(t, err, "connect to %s", name)

	require.NoError(t, applySchema(t.Context(), pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")
	return pool, cfg
}

func withAdmin(dsn string, fn func(context.Context, *pgxpool.Pool) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return errs.Wrap(err, "connect as admin")
	}
	defer pool.Close()
	return fn(ctx, pool)
}

// applySchema runs every migration file in lexical order, the same order atlas uses.
func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}
	slices.Sort(files)

	for _, f := range files {
		body, err := os.ReadFile(f) // #nosec G304 -- path comes from the repo's migrations dir
		if err != nil {
			return errs.Wrapf(err, "read %s", f)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return errs.Wrapf(err, "apply %s", filepath.Base(f))
		}
	}
	return nil
}

// migrationsDir walks up from the package under test to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errs.Wrap(err, "getwd")
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errs.New("module root not found")
		}
		dir = parent
	}
}
