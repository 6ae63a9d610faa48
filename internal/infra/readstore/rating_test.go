//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"

	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRatingViewQueries struct {
	mock.Mock
}

func (m *MockRatingViewQueries) GetRatingByRequestAndRater(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingByRequestAndRaterParams) (*sqlc.MatchingRating, error) {
	args := m.Called(ctx, db, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlc.MatchingRating), args.Error(1)
}

func (m *MockRatingViewQueries) ListRatingsForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingsForUserParams) ([]*sqlc.ListRatingsForUserRow, error) {
	args := m.Called(ctx, db, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlc.ListRatingsForUserRow), args.Error(1)
}

func (m *MockRatingViewQueries) GetRatingSummaryForUser(ctx context.Context, db sqlc.DBTX, ratedID uuid.UUID) (*sqlc.GetRatingSummaryForUserRow, error) {
	args := m.Called(ctx, db, ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlc.GetRatingSummaryForUserRow), args.Error(1)
}

func TestRatingReadStore_HasRated(t *testing.T) {
	requestID, raterID := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		row       *sqlc.MatchingRating
		mockError error
		want      bool
		wantErr   bool
	}{
		{name: "rated", row: &sqlc.MatchingRating{ID: uuid.New()}, want: true},
		{name: "not rated", mockError: pgx.ErrNoRows, want: false},
		{name: "database error", mockError: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRatingViewQueries)
			mockQueries.On("GetRatingByRequestAndRater", mock.Anything, mock.Anything, sqlc.GetRatingByRequestAndRaterParams{
				RequestID: requestID,
				RaterID:   raterID,
			}).Return(tt.row, tt.mockError)

			got, err := NewRatingReadStore(mockQueries, nil).HasRated(context.Background(), requestID, raterID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatingReadStore_SummaryForUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		row       *sqlc.GetRatingSummaryForUserRow
		wantCount int64
		wantAvg   float64
	}{
		{
			name:      "no ratings yet",
			row:       &sqlc.GetRatingSummaryForUserRow{RatingCount: 0, AverageRating: pgtype.Numeric{}},
			wantCount: 0,
			wantAvg:   0,
		},
		{
			name: "average rounded to one decimal",
			row: &sqlc.GetRatingSummaryForUserRow{
				RatingCount:   3,
				AverageRating: pgtype.Numeric{Int: big.NewInt(43333), Exp: -4, Valid: true},
			},
			wantCount: 3,
			wantAvg:   4.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRatingViewQueries)
			mockQueries.On("GetRatingSummaryForUser", mock.Anything, mock.Anything, userID).Return(tt.row, nil)

			summary, err := NewRatingReadStore(mockQueries, nil).SummaryForUser(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, userID, summary.UserID)
			assert.Equal(t, tt.wantCount, summary.RatingCount)
			assert.InDelta(t, tt.wantAvg, summary.AverageRating, 1e-9)
		})
	}
}
