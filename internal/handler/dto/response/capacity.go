package response

import (
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// copyOptions renders ids as strings when copying views into DTOs.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

type CapacityResponse struct {
	VisitorID      string  `json:"visitor_id"`
	FullName       string  `json:"full_name"`
	Country        *string `json:"country,omitempty"`
	ActiveRequests int     `json:"active_requests"`
	RemainingSlots int     `json:"remaining_slots"`
	Limit          int     `json:"limit"`
	NearCapacity   bool    `json:"near_capacity"`
}

func FromCapacityView(v *queries.CapacityView) (*CapacityResponse, error) {
	res := &CapacityResponse{}
	if err := copier.CopyWithOption(res, v, copyOptions); err != nil {
		return nil, err
	}
	return res, nil
}

type CapacityListResponse struct {
	Items      []*CapacityResponse `json:"items"`
	NextCursor *string             `json:"next_cursor,omitempty"`
}

func FromCapacityViews(views []*queries.CapacityView, next *queries.Cursor) (*CapacityListResponse, error) {
	items := make([]*CapacityResponse, len(views))
	for i, v := range views {
		item, err := FromCapacityView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return &CapacityListResponse{Items: items, NextCursor: cursorString(next)}, nil
}
