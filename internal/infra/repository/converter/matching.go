package converter

import (
	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
)

func MatchingRequestToCreateParams(r *matching.Request) sqlc.CreateMatchingRequestParams {
	d := r.Details()
	return sqlc.CreateMatchingRequestParams{
		ID:                   r.ID(),
		SupplierID:           r.SupplierID(),
		ProductName:          d.ProductName(),
		Quantity:             d.Quantity(),
		Unit:                 d.Unit(),
		DestinationCountries: d.Countries().Values(),
		Price:                d.Price(),
		Currency:             d.Currency(),
		PaymentTerms:         pgconv.StringPtrToPgtype(d.PaymentTerms()),
		DeliveryTime:         pgconv.StringPtrToPgtype(d.DeliveryTime()),
		Description:          pgconv.StringPtrToPgtype(d.Description()),
		Status:               r.Status().String(),
		ExpiresAt:            pgconv.TimeToPgtype(r.ExpiresAt()),
		CreatedAt:            pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func MatchingRequestToUpdateParams(r *matching.Request) sqlc.UpdateMatchingRequestParams {
	d := r.Details()
	return sqlc.UpdateMatchingRequestParams{
		ID:                   r.ID(),
		ProductName:          d.ProductName(),
		Quantity:             d.Quantity(),
		Unit:                 d.Unit(),
		DestinationCountries: d.Countries().Values(),
		Price:                d.Price(),
		Currency:             d.Currency(),
		PaymentTerms:         pgconv.StringPtrToPgtype(d.PaymentTerms()),
		DeliveryTime:         pgconv.StringPtrToPgtype(d.DeliveryTime()),
		Description:          pgconv.StringPtrToPgtype(d.Description()),
		Status:               r.Status().String(),
		ExpiresAt:            pgconv.TimeToPgtype(r.ExpiresAt()),
		AcceptedVisitorID:    pgconv.UUIDPtrToPgtype(r.AcceptedVisitorID()),
		AcceptedAt:           pgconv.TimePtrToPgtype(r.AcceptedAt()),
		CompletedAt:          pgconv.TimePtrToPgtype(r.CompletedAt()),
		CancelledAt:          pgconv.TimePtrToPgtype(r.CancelledAt()),
		UpdatedAt:            pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func MatchingRequestFromRow(row *sqlc.MatchingRequest) (*matching.Request, error) {
	status, err := matching.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	details := matching.ReconstructDetails(
		row.ProductName,
		row.Quantity,
		row.Unit,
		row.DestinationCountries,
		row.Price,
		row.Currency,
		pgconv.StringPtrFromPgtype(row.PaymentTerms),
		pgconv.StringPtrFromPgtype(row.DeliveryTime),
		pgconv.StringPtrFromPgtype(row.Description),
	)

	return matching.ReconstructRequest(
		row.ID,
		row.SupplierID,
		details,
		status,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.UUIDPtrFromPgtype(row.AcceptedVisitorID),
		pgconv.TimePtrFromPgtype(row.AcceptedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
