package request

import (
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/patch"
)

// CreateMatchingRequestRequest carries destination countries as one comma
// separated string, the way suppliers type them.
type CreateMatchingRequestRequest struct {
	ProductName          string    `json:"product_name" binding:"required,max=255"`
	Quantity             string    `json:"quantity" binding:"required,max=100"`
	Unit                 string    `json:"unit" binding:"required,max=100"`
	DestinationCountries string    `json:"destination_countries" binding:"required"`
	Price                string    `json:"price" binding:"required,max=100"`
	Currency             string    `json:"currency" binding:"required,len=3"`
	PaymentTerms         *string   `json:"payment_terms,omitempty" binding:"omitempty,max=500"`
	DeliveryTime         *string   `json:"delivery_time,omitempty" binding:"omitempty,max=100"`
	Description          *string   `json:"description,omitempty" binding:"omitempty,max=2000"`
	ExpiresAt            time.Time `json:"expires_at" binding:"required"`
}

func (r *CreateMatchingRequestRequest) ToDomain() (matching.Details, error) {
	return matching.NewDetails(matching.DetailsInput{
		ProductName:          r.ProductName,
		Quantity:             r.Quantity,
		Unit:                 r.Unit,
		DestinationCountries: r.DestinationCountries,
		Price:                r.Price,
		Currency:             r.Currency,
		PaymentTerms:         r.PaymentTerms,
		DeliveryTime:         r.DeliveryTime,
		Description:          r.Description,
	})
}

// UpdateMatchingRequestRequest is a partial update. Omitted fields keep their
// value; a blank optional field clears it.
type UpdateMatchingRequestRequest struct {
	ProductName          *string `json:"product_name,omitempty" binding:"omitempty,max=255"`
	Quantity             *string `json:"quantity,omitempty" binding:"omitempty,max=100"`
	Unit                 *string `json:"unit,omitempty" binding:"omitempty,max=100"`
	DestinationCountries *string `json:"destination_countries,omitempty"`
	Price                *string `json:"price,omitempty" binding:"omitempty,max=100"`
	Currency             *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	PaymentTerms         *string `json:"payment_terms,omitempty" binding:"omitempty,max=500"`
	DeliveryTime         *string `json:"delivery_time,omitempty" binding:"omitempty,max=100"`
	Description          *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

func (r *UpdateMatchingRequestRequest) ToDomain(existing matching.Details) (matching.Details, error) {
	current := existing.Input()
	return matching.NewDetails(matching.DetailsInput{
		ProductName:          patch.Coalesce(r.ProductName, current.ProductName),
		Quantity:             patch.Coalesce(r.Quantity, current.Quantity),
		Unit:                 patch.Coalesce(r.Unit, current.Unit),
		DestinationCountries: patch.Coalesce(r.DestinationCountries, current.DestinationCountries),
		Price:                patch.Coalesce(r.Price, current.Price),
		Currency:             patch.Coalesce(r.Currency, current.Currency),
		PaymentTerms:         patch.CoalesceOptional(r.PaymentTerms, current.PaymentTerms),
		DeliveryTime:         patch.CoalesceOptional(r.DeliveryTime, current.DeliveryTime),
		Description:          patch.CoalesceOptional(r.Description, current.Description),
	})
}

type ExtendMatchingRequestRequest struct {
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

type RespondRequest struct {
	ResponseType string  `json:"response_type" binding:"required,oneof=accepted rejected question"`
	Message      *string `json:"message,omitempty" binding:"omitempty,max=2000"`
}

type SubmitRatingRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}
