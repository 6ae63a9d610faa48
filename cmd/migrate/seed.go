package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

// seedAdmin creates the first approved admin so a fresh database can be
// logged into. An existing active account with the same email is left alone.
func seedAdmin(ctx context.Context, url, email, fullName string, logger *slog.Logger) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return errs.Wrap(err, "seed admin")
	}
	secret, err := user.NewPassword(os.Getenv(adminPasswordEnv))
	if err != nil {
		return errs.Wrapf(err, "seed admin: %s", adminPasswordEnv)
	}
	hash, err := password.HashPassword(secret.Value())
	if err != nil {
		return errs.Wrap(err, "seed admin")
	}

	account, err := user.NewUser(addr, hash, fullName, user.RoleAdmin, nil)
	if err != nil {
		return errs.Wrap(err, "seed admin")
	}
	account.Approve()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return errs.Wrap(err, "seed admin: connect")
	}
	defer pool.Close()

	users := repository.NewUserRepository(sqlc.New())
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return users.Create(ctx, tx, account)
	})
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		logger.Info("admin already exists", "email", addr.Value())
		return nil
	case err != nil:
		return errs.Wrap(err, "seed admin")
	}

	logger.Info("admin created", "email", addr.Value(), "user_id", account.ID().String())
	return nil
}
