package repository

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExposureWriteQueries interface {
	RecordExposure(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordExposureParams) (int64, error)
}

// ExposureRepository appends to the exposure log. Repeated sightings of the
// same request by the same visitor are ignored.
type ExposureRepository struct {
	queries ExposureWriteQueries
}

func NewExposureRepository(queries ExposureWriteQueries) *ExposureRepository {
	return &ExposureRepository{queries: queries}
}

func (r *ExposureRepository) Record(ctx context.Context, tx sqlc.DBTX, requestID, visitorID uuid.UUID, source shared.ExposureSource, at time.Time) error {
	_, err := r.queries.RecordExposure(ctx, tx, sqlc.RecordExposureParams{
		RequestID:   requestID,
		VisitorID:   visitorID,
		Source:      string(source),
		FirstSeenAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record exposure", err)
	}
	return nil
}
