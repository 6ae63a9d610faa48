// Package pgconv converts between domain values and the pgtype wrappers sqlc generates.
package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumeric = errors.New("numeric is not representable as float64")

// deref returns nil for SQL NULL and a copy of v otherwise.
func deref[T any](v T, valid bool) *T {
	if !valid {
		return nil
	}
	return &v
}

func UUIDPtrFromPgtype(v pgtype.UUID) *uuid.UUID {
	return deref(uuid.UUID(v.Bytes), v.Valid)
}

func StringPtrFromPgtype(v pgtype.Text) *string         { return deref(v.String, v.Valid) }
func TimePtrFromPgtype(v pgtype.Timestamptz) *time.Time { return deref(v.Time, v.Valid) }
func TimeFromPgtype(v pgtype.Timestamptz) time.Time     { return v.Time }
func UUIDToPgtype(id uuid.UUID) pgtype.UUID             { return pgtype.UUID{Bytes: id, Valid: true} }
func StringToPgtype(s string) pgtype.Text               { return pgtype.Text{String: s, Valid: true} }
func TimeToPgtype(t time.Time) pgtype.Timestamptz       { return pgtype.Timestamptz{Time: t, Valid: true} }

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return UUIDToPgtype(*id)
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return StringToPgtype(*s)
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return TimeToPgtype(*t)
}

// Float64FromNumeric reads NULL as zero, which is what AVG over no rows should mean to callers.
func Float64FromNumeric(n pgtype.Numeric) (float64, error) {
	if !n.Valid {
		return 0, nil
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return 0, ErrInvalidNumeric
	}
	return f.Float64, nil
}

// IsNoRows matches the not-found error of both pgx and database/sql.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
