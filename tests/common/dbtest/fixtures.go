//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// PasswordHash is the bcrypt hash of DefaultPassword.
const (
	DefaultPassword = "password123"
	PasswordHash    = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

	AdminEmail = "admin@asl-market.test"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestUser inserts an active, approved user. Calling it again with the
// same email returns the existing id.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, full_name, role, country, is_active, is_approved)
		VALUES ($1, $2, $3, $4, $5, 'Iran', true, true) ON CONFLICT (email) WHERE is_active DO NOTHING`,
		userID, email, PasswordHash, fullNameFor(email), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active", email).Scan(&userID)
	}

	return userID
}

func SetUserApproved(t *testing.T, db DBLike, userID uuid.UUID, approved bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_approved = $2 WHERE id = $1", userID, approved)
	require.NoError(t, err)
}

func SetUserActive(t *testing.T, db DBLike, userID uuid.UUID, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = $2 WHERE id = $1", userID, active)
	require.NoError(t, err)
}

// CreateMatchingRequest inserts a request directly, bypassing the API.
// status "accepted" and "completed" need visitorID.
func CreateMatchingRequest(t *testing.T, db DBLike, supplierID uuid.UUID, status string, expiresAt time.Time, visitorID *uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var acceptedAt *time.Time
	if visitorID != nil {
		now := time.Now()
		acceptedAt = &now
	}
	_, err := db.Exec(context.Background(), `INSERT INTO matching_requests
		(id, supplier_id, product_name, quantity, unit, destination_countries, price, currency, status, expires_at, accepted_visitor_id, accepted_at)
		VALUES ($1, $2, 'Saffron', '100', 'kg', ARRAY['Iraq','UAE'], '1200', 'USD', $3, $4, $5, $6)`,
		id, supplierID, status, expiresAt, visitorID, acceptedAt)
	require.NoError(t, err)
	return id
}

// ExpireMatchingRequest moves the deadline into the past without touching
// the status, the state the lazy expiry path has to deal with.
func ExpireMatchingRequest(t *testing.T, db DBLike, requestID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"UPDATE matching_requests SET expires_at = now() - interval '1 minute' WHERE id = $1", requestID)
	require.NoError(t, err)
}

func RequestStatus(t *testing.T, db DBLike, requestID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM matching_requests WHERE id = $1", requestID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

func fullNameFor(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// SeedReferenceData inserts the admin account every environment has.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (email, password_hash, full_name, role, is_active, is_approved)
		VALUES ($1, $2, 'Admin', 'admin', true, true)
		ON CONFLICT (email) WHERE is_active DO NOTHING`,
		AdminEmail, PasswordHash)
	return errs.Wrap(err, "seed admin")
}

// truncateAll lists the tables at call time so new migrations need no edits here.
const truncateAll = `
	SELECT COALESCE('TRUNCATE ' || string_agg(format('%I.%I', schemaname, tablename), ', ') || ' RESTART IDENTITY CASCADE', '')
	FROM pg_tables
	WHERE schemaname = 'public' AND tablename <> 'atlas_schema_revisions'`

// ResetDB empties every table and reseeds the reference rows.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stmt string
	if err := pool.QueryRow(ctx, truncateAll).Scan(&stmt); err != nil {
		return errs.Wrap(err, "list tables")
	}
	if stmt != "" {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "truncate tables")
		}
	}
	return SeedReferenceData(pool)
}
