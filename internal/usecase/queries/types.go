package queries

import (
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"

	"github.com/google/uuid"
)

// Viewer is the authenticated caller of a read.
type Viewer struct {
	ID   uuid.UUID
	Role user.Role
}

func (v Viewer) IsAdmin() bool { return v.Role == user.RoleAdmin }

// MatchingRequestView is the read model of a matching request. IsExpired and
// RemainingSeconds are computed against the clock at read time.
type MatchingRequestView struct {
	ID                   uuid.UUID  `json:"id"`
	SupplierID           uuid.UUID  `json:"supplier_id"`
	ProductName          string     `json:"product_name"`
	Quantity             string     `json:"quantity"`
	Unit                 string     `json:"unit"`
	DestinationCountries []string   `json:"destination_countries"`
	Price                string     `json:"price"`
	Currency             string     `json:"currency"`
	PaymentTerms         *string    `json:"payment_terms,omitempty"`
	DeliveryTime         *string    `json:"delivery_time,omitempty"`
	Description          *string    `json:"description,omitempty"`
	Status               string     `json:"status"`
	ExpiresAt            time.Time  `json:"expires_at"`
	AcceptedVisitorID    *uuid.UUID `json:"accepted_visitor_id,omitempty"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	MatchedVisitorCount  int        `json:"matched_visitor_count"`
	IsExpired            bool       `json:"is_expired"`
	RemainingSeconds     int64      `json:"remaining_seconds"`
}

type ResponseView struct {
	ID             uuid.UUID `json:"id"`
	RequestID      uuid.UUID `json:"request_id"`
	VisitorID      uuid.UUID `json:"visitor_id"`
	VisitorName    string    `json:"visitor_name,omitempty"`
	VisitorCountry *string   `json:"visitor_country,omitempty"`
	ResponseType   string    `json:"response_type"`
	Message        *string   `json:"message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MatchingRequestDetail is what a single request looks like to a given
// viewer. Responses is only filled for the owner and admins.
type MatchingRequestDetail struct {
	Request    *MatchingRequestView `json:"request"`
	Responses  []*ResponseView      `json:"responses,omitempty"`
	MyResponse *ResponseView        `json:"my_response,omitempty"`
	CanChat    bool                 `json:"can_chat"`
	CanRate    bool                 `json:"can_rate"`
}

// VisitorLoad is a visitor together with the number of accepted requests
// currently assigned to them.
type VisitorLoad struct {
	ID             uuid.UUID
	FullName       string
	Country        *string
	CreatedAt      time.Time
	ActiveRequests int64
}

type CapacityView struct {
	VisitorID      uuid.UUID `json:"visitor_id"`
	FullName       string    `json:"full_name"`
	Country        *string   `json:"country,omitempty"`
	ActiveRequests int       `json:"active_requests"`
	RemainingSlots int       `json:"remaining_slots"`
	Limit          int       `json:"limit"`
	NearCapacity   bool      `json:"near_capacity"`
}

type RatingView struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	RaterID   uuid.UUID `json:"rater_id"`
	RaterName string    `json:"rater_name"`
	RaterRole string    `json:"rater_role"`
	RatedID   uuid.UUID `json:"rated_id"`
	Score     int       `json:"score"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingSummary struct {
	UserID        uuid.UUID `json:"user_id"`
	RatingCount   int64     `json:"rating_count"`
	AverageRating float64   `json:"average_rating"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	Role       string     `json:"role"`
	Country    *string    `json:"country,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsApproved bool       `json:"is_approved"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}
