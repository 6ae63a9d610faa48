//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyWriteQueries struct {
	mock.Mock
}

func (m *MockIdempotencyWriteQueries) TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (*sqlc.IdempotencyKey, error) {
	args := m.Called(ctx, db, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlc.IdempotencyKey), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := shared.IdempotencyRecord{
		Key:         uuid.New(),
		UserID:      uuid.New(),
		Endpoint:    "POST /matching/requests",
		RequestHash: "abc",
		ExpiresAt:   now.Add(24 * time.Hour),
	}

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "fresh key", affected: 1, want: true},
		{name: "existing key", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockIdempotencyWriteQueries)
			db := new(mockDBTX)
			mockQueries.On("TryInsertIdempotencyKey", mock.Anything, db, sqlc.TryInsertIdempotencyKeyParams{
				Key:         rec.Key,
				UserID:      rec.UserID,
				Endpoint:    rec.Endpoint,
				RequestHash: rec.RequestHash,
				ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
				CreatedAt:   pgconv.TimeToPgtype(now),
			}).Return(tt.affected, nil)

			inserted, err := NewIdempotencyRepository(mockQueries).TryInsert(context.Background(), db, rec, now)

			require.NoError(t, err)
			assert.Equal(t, tt.want, inserted)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestIdempotencyRepository_Get(t *testing.T) {
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()
	expires := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	t.Run("completed record carries result", func(t *testing.T) {
		mockQueries := new(MockIdempotencyWriteQueries)
		db := new(mockDBTX)
		mockQueries.On("GetIdempotencyKey", mock.Anything, db, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}).
			Return(&sqlc.IdempotencyKey{
				Key:         key,
				UserID:      userID,
				Endpoint:    "POST /matching/requests",
				RequestHash: "abc",
				Status:      shared.IdempotencyCompleted,
				ResultID:    pgconv.UUIDToPgtype(resultID),
				ExpiresAt:   pgconv.TimeToPgtype(expires),
			}, nil)

		rec, err := NewIdempotencyRepository(mockQueries).Get(context.Background(), db, key, userID)

		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyCompleted, rec.Status)
		require.NotNil(t, rec.ResultID)
		assert.Equal(t, resultID, *rec.ResultID)
		assert.True(t, rec.ExpiresAt.Equal(expires))
	})

	t.Run("missing key is not found", func(t *testing.T) {
		mockQueries := new(MockIdempotencyWriteQueries)
		db := new(mockDBTX)
		mockQueries.On("GetIdempotencyKey", mock.Anything, db, mock.Anything).Return(nil, pgx.ErrNoRows)

		_, err := NewIdempotencyRepository(mockQueries).Get(context.Background(), db, key, userID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_Complete(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()

	mockQueries := new(MockIdempotencyWriteQueries)
	db := new(mockDBTX)
	mockQueries.On("CompleteIdempotencyKey", mock.Anything, db, sqlc.CompleteIdempotencyKeyParams{
		Key:       key,
		UserID:    userID,
		ResultID:  pgconv.UUIDToPgtype(resultID),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}).Return(int64(0), nil)

	err := NewIdempotencyRepository(mockQueries).Complete(context.Background(), db, key, userID, resultID, now)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
