//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchingRequestBuilder struct {
	ID                   uuid.UUID
	SupplierID           uuid.UUID
	ProductName          string
	Quantity             string
	Unit                 string
	DestinationCountries string
	Price                string
	Currency             string
	Description          *string
	Status               matching.Status
	ExpiresAt            time.Time
	AcceptedVisitorID    *uuid.UUID
	CreatedAt            time.Time
}

func NewMatchingRequestBuilder() *MatchingRequestBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &MatchingRequestBuilder{
		ID:                   uuid.New(),
		SupplierID:           uuid.New(),
		ProductName:          "Saffron",
		Quantity:             "100",
		Unit:                 "kg",
		DestinationCountries: "Iraq, UAE",
		Price:                "1200",
		Currency:             "USD",
		Status:               matching.StatusActive,
		ExpiresAt:            now.Add(72 * time.Hour),
		CreatedAt:            now,
	}
}

func (b *MatchingRequestBuilder) With(mutate func(*MatchingRequestBuilder)) *MatchingRequestBuilder {
	mutate(b)
	return b
}

func (b *MatchingRequestBuilder) WithSupplier(id uuid.UUID) *MatchingRequestBuilder {
	b.SupplierID = id
	return b
}

func (b *MatchingRequestBuilder) WithStatus(s matching.Status) *MatchingRequestBuilder {
	b.Status = s
	return b
}

func (b *MatchingRequestBuilder) WithExpiresAt(t time.Time) *MatchingRequestBuilder {
	b.ExpiresAt = t
	return b
}

// AcceptedBy moves the request to accepted for visitorID.
func (b *MatchingRequestBuilder) AcceptedBy(visitorID uuid.UUID) *MatchingRequestBuilder {
	b.Status = matching.StatusAccepted
	b.AcceptedVisitorID = &visitorID
	return b
}

func (b *MatchingRequestBuilder) details() matching.Details {
	d, err := matching.NewDetails(matching.DetailsInput{
		ProductName:          b.ProductName,
		Quantity:             b.Quantity,
		Unit:                 b.Unit,
		DestinationCountries: b.DestinationCountries,
		Price:                b.Price,
		Currency:             b.Currency,
		Description:          b.Description,
	})
	if err != nil {
		panic("matching builder: " + err.Error())
	}
	return d
}

func (b *MatchingRequestBuilder) BuildDomain() *matching.Request {
	var acceptedAt *time.Time
	if b.AcceptedVisitorID != nil {
		t := b.CreatedAt.Add(time.Minute)
		acceptedAt = &t
	}
	return matching.ReconstructRequest(
		b.ID, b.SupplierID,
		b.details(),
		b.Status,
		b.ExpiresAt,
		b.AcceptedVisitorID,
		acceptedAt, nil, nil,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *MatchingRequestBuilder) BuildCreateDTO() reqdto.CreateMatchingRequestRequest {
	return reqdto.CreateMatchingRequestRequest{
		ProductName:          b.ProductName,
		Quantity:             b.Quantity,
		Unit:                 b.Unit,
		DestinationCountries: b.DestinationCountries,
		Price:                b.Price,
		Currency:             b.Currency,
		Description:          b.Description,
		ExpiresAt:            b.ExpiresAt,
	}
}

func (b *MatchingRequestBuilder) BuildViewQuery() *queries.MatchingRequestView {
	d := b.details()
	return &queries.MatchingRequestView{
		ID:                   b.ID,
		SupplierID:           b.SupplierID,
		ProductName:          d.ProductName(),
		Quantity:             d.Quantity(),
		Unit:                 d.Unit(),
		DestinationCountries: d.Countries().Values(),
		Price:                d.Price(),
		Currency:             d.Currency(),
		Description:          b.Description,
		Status:               string(b.Status),
		ExpiresAt:            b.ExpiresAt,
		AcceptedVisitorID:    b.AcceptedVisitorID,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.CreatedAt,
		RemainingSeconds:     int64(time.Until(b.ExpiresAt).Seconds()),
	}
}

func (b *MatchingRequestBuilder) BuildDetailQuery() *queries.MatchingRequestDetail {
	return &queries.MatchingRequestDetail{Request: b.BuildViewQuery()}
}
