// Command migrate applies migrations/ to the configured database with Atlas.
//
//	go run ./cmd/migrate            # apply pending migrations
//	go run ./cmd/migrate --status   # show current and pending versions
//	go run ./cmd/migrate --dry-run  # print what would run
//
//	ADMIN_PASSWORD=... go run ./cmd/migrate --seed-admin admin@example.com
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

type options struct {
	dir     string
	url     string
	binary  string
	amount  uint64
	dryRun  bool
	status  bool
	timeout time.Duration

	seedAdmin string
	adminName string
}

func main() {
	var opts options
	pflag.StringVar(&opts.dir, "dir", "migrations", "migration directory")
	pflag.StringVar(&opts.url, "url", "", "database URL (defaults to DB_* environment variables)")
	pflag.StringVar(&opts.binary, "atlas", "atlas", "path to the atlas binary")
	pflag.Uint64Var(&opts.amount, "amount", 0, "apply at most this many pending files (0 = all)")
	pflag.BoolVar(&opts.dryRun, "dry-run", false, "print pending statements without executing them")
	pflag.BoolVar(&opts.status, "status", false, "report migration status and exit")
	pflag.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall timeout")
	pflag.StringVar(&opts.seedAdmin, "seed-admin", "", "after applying, create an approved admin with this email (password from "+adminPasswordEnv+")")
	pflag.StringVar(&opts.adminName, "admin-name", "ASL Admin", "full name of the seeded admin")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(opts, logger); err != nil {
		logger.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	url := opts.url
	if url == "" {
		dsn, err := dsnFromEnv()
		if err != nil {
			return err
		}
		url = dsn
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(opts.dir)))
	if err != nil {
		return errs.Wrapf(err, "load migration dir %s", opts.dir)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), opts.binary)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	if opts.status {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return errs.Wrap(err, "migrate status")
		}
		logger.Info("migration status",
			"current", st.Current,
			"next", st.Next,
			"applied", len(st.Applied),
			"pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		Amount: opts.amount,
		DryRun: opts.dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "migrate apply")
	}
	for _, f := range res.Applied {
		logger.Info("migration applied", "version", f.Version, "file", f.Name, "dry_run", opts.dryRun)
	}
	logger.Info("migrations done", "current", res.Current, "target", res.Target, "applied", len(res.Applied))

	if opts.seedAdmin == "" || opts.dryRun {
		return nil
	}
	return seedAdmin(ctx, url, opts.seedAdmin, opts.adminName, logger)
}

// dsnFromEnv reads only the DB_* variables so the command runs without the
// server's required settings.
func dsnFromEnv() (string, error) {
	_ = godotenv.Load()

	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return "", errs.Wrap(err, "read DB config")
	}
	return cfg.BuildDSN(), nil
}
