package infra

import (
	"errors"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a low-level error. Without an explicit kind it is derived
// from the postgres error code.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	var constraint string
	if len(kind) > 0 {
		k = kind[0]
	} else {
		k, constraint = classify(err)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func classify(err error) (RepositoryErrorKind, string) {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound, ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindDuplicateKey, pgErr.ConstraintName
		case "23503":
			return KindForeignKeyViolated, pgErr.ConstraintName
		case "23514":
			return KindCheckViolated, pgErr.ConstraintName
		}
	}
	return KindDBFailure, ""
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)
