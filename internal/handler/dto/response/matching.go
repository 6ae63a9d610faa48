package response

import (
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
)

type MatchingRequestResponse struct {
	ID                   string     `json:"id"`
	SupplierID           string     `json:"supplier_id"`
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
	AcceptedVisitorID    *string    `json:"accepted_visitor_id,omitempty"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	MatchedVisitorCount  int        `json:"matched_visitor_count"`
	IsExpired            bool       `json:"is_expired"`
	RemainingSeconds     int64      `json:"remaining_seconds"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func FromMatchingRequestView(v *queries.MatchingRequestView) *MatchingRequestResponse {
	res := &MatchingRequestResponse{
		ID:                   v.ID.String(),
		SupplierID:           v.SupplierID.String(),
		ProductName:          v.ProductName,
		Quantity:             v.Quantity,
		Unit:                 v.Unit,
		DestinationCountries: v.DestinationCountries,
		Price:                v.Price,
		Currency:             v.Currency,
		PaymentTerms:         v.PaymentTerms,
		DeliveryTime:         v.DeliveryTime,
		Description:          v.Description,
		Status:               v.Status,
		ExpiresAt:            v.ExpiresAt,
		AcceptedAt:           v.AcceptedAt,
		CompletedAt:          v.CompletedAt,
		CancelledAt:          v.CancelledAt,
		MatchedVisitorCount:  v.MatchedVisitorCount,
		IsExpired:            v.IsExpired,
		RemainingSeconds:     v.RemainingSeconds,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
	if v.AcceptedVisitorID != nil {
		id := v.AcceptedVisitorID.String()
		res.AcceptedVisitorID = &id
	}
	return res
}

type MatchingRequestListResponse struct {
	Items      []*MatchingRequestResponse `json:"items"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

func FromMatchingRequestList(views []*queries.MatchingRequestView, next *queries.Cursor) *MatchingRequestListResponse {
	items := make([]*MatchingRequestResponse, len(views))
	for i, v := range views {
		items[i] = FromMatchingRequestView(v)
	}
	return &MatchingRequestListResponse{Items: items, NextCursor: cursorString(next)}
}

type VisitorResponseResponse struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	VisitorID      string    `json:"visitor_id"`
	VisitorName    string    `json:"visitor_name,omitempty"`
	VisitorCountry *string   `json:"visitor_country,omitempty"`
	ResponseType   string    `json:"response_type"`
	Message        *string   `json:"message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromResponseView(v *queries.ResponseView) *VisitorResponseResponse {
	if v == nil {
		return nil
	}
	return &VisitorResponseResponse{
		ID:             v.ID.String(),
		RequestID:      v.RequestID.String(),
		VisitorID:      v.VisitorID.String(),
		VisitorName:    v.VisitorName,
		VisitorCountry: v.VisitorCountry,
		ResponseType:   v.ResponseType,
		Message:        v.Message,
		CreatedAt:      v.CreatedAt,
	}
}

func FromResponseViews(views []*queries.ResponseView) []*VisitorResponseResponse {
	res := make([]*VisitorResponseResponse, len(views))
	for i, v := range views {
		res[i] = FromResponseView(v)
	}
	return res
}

type MatchingRequestDetailResponse struct {
	Request    *MatchingRequestResponse   `json:"request"`
	Responses  []*VisitorResponseResponse `json:"responses,omitempty"`
	MyResponse *VisitorResponseResponse   `json:"my_response,omitempty"`
	CanChat    bool                       `json:"can_chat"`
	CanRate    bool                       `json:"can_rate"`
}

func FromMatchingRequestDetail(d *queries.MatchingRequestDetail) *MatchingRequestDetailResponse {
	res := &MatchingRequestDetailResponse{
		Request:    FromMatchingRequestView(d.Request),
		MyResponse: FromResponseView(d.MyResponse),
		CanChat:    d.CanChat,
		CanRate:    d.CanRate,
	}
	if d.Responses != nil {
		res.Responses = FromResponseViews(d.Responses)
	}
	return res
}

type RespondResponse struct {
	ResponseID string                   `json:"response_id"`
	Accepted   bool                     `json:"accepted"`
	Response   *VisitorResponseResponse `json:"response,omitempty"`
}

func FromRespondResult(r *commands.RespondResult, view *queries.ResponseView) *RespondResponse {
	return &RespondResponse{
		ResponseID: r.ResponseID.String(),
		Accepted:   r.Accepted,
		Response:   FromResponseView(view),
	}
}

// GateResponse answers the chat and rating gates.
type GateResponse struct {
	RequestID string `json:"request_id"`
	Allowed   bool   `json:"allowed"`
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	after := c.After
	return &after
}
