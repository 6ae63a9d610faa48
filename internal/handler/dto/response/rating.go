package response

import (
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	RaterID   string    `json:"rater_id"`
	RaterName string    `json:"rater_name"`
	RaterRole string    `json:"rater_role"`
	RatedID   string    `json:"rated_id"`
	Score     int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRatingView(v *queries.RatingView) (*RatingResponse, error) {
	res := &RatingResponse{}
	if err := copier.CopyWithOption(res, v, copyOptions); err != nil {
		return nil, err
	}
	return res, nil
}

type RatingSummaryResponse struct {
	RatingCount   int64   `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

type UserRatingsResponse struct {
	UserID     string                `json:"user_id"`
	Summary    RatingSummaryResponse `json:"summary"`
	Items      []*RatingResponse     `json:"items"`
	NextCursor *string               `json:"next_cursor,omitempty"`
}

func FromUserRatings(summary *queries.RatingSummary, views []*queries.RatingView, next *queries.Cursor) (*UserRatingsResponse, error) {
	res := &UserRatingsResponse{
		UserID:     summary.UserID.String(),
		Items:      make([]*RatingResponse, len(views)),
		NextCursor: cursorString(next),
	}
	if err := copier.CopyWithOption(&res.Summary, summary, copyOptions); err != nil {
		return nil, err
	}
	for i, v := range views {
		item, err := FromRatingView(v)
		if err != nil {
			return nil, err
		}
		res.Items[i] = item
	}
	return res, nil
}

type SubmitRatingResponse struct {
	RatingID string `json:"rating_id"`
	RatedID  string `json:"rated_id"`
}
