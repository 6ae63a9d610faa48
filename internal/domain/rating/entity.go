package rating

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxCommentLength = 1000

var (
	ErrInvalidScore     = errs.Sentinel("rating must be between 1 and 5", errs.ErrInvalidInput)
	ErrCommentTooLong   = errs.Sentinel("comment exceeds maximum length", errs.ErrInvalidInput)
	ErrInvalidRaterRole = errs.Sentinel("rater must be the supplier or the visitor", errs.ErrInvalidInput)
	ErrRatingNotOpen    = errs.Sentinel("request cannot be rated in its current status", errs.ErrInvalidState)
	ErrAlreadyRated     = errs.Sentinel("user already rated this matching request", errs.ErrConflict)
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < 1 || v > 5 {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

type RaterRole string

const (
	RaterSupplier RaterRole = "supplier"
	RaterVisitor  RaterRole = "visitor"
)

func ParseRaterRole(s string) (RaterRole, error) {
	switch r := RaterRole(s); r {
	case RaterSupplier, RaterVisitor:
		return r, nil
	default:
		return "", ErrInvalidRaterRole
	}
}

// Rating is one party's score of the other after acceptance.
type Rating struct {
	id        uuid.UUID
	requestID uuid.UUID
	raterID   uuid.UUID
	raterRole RaterRole
	ratedID   uuid.UUID
	score     Score
	comment   *string
	createdAt time.Time
}

func NewRating(requestID, raterID uuid.UUID, raterRole RaterRole, ratedID uuid.UUID, score Score, comment *string, now time.Time) (*Rating, error) {
	if _, err := ParseRaterRole(string(raterRole)); err != nil {
		return nil, err
	}
	if score.value == 0 {
		return nil, ErrInvalidScore
	}

	var c *string
	if comment != nil {
		t := strings.TrimSpace(*comment)
		if utf8.RuneCountInString(t) > MaxCommentLength {
			return nil, ErrCommentTooLong
		}
		if t != "" {
			c = &t
		}
	}

	return &Rating{
		id:        uuid.New(),
		requestID: requestID,
		raterID:   raterID,
		raterRole: raterRole,
		ratedID:   ratedID,
		score:     score,
		comment:   c,
		createdAt: now,
	}, nil
}

func ReconstructRating(id, requestID, raterID uuid.UUID, raterRole RaterRole, ratedID uuid.UUID, score Score, comment *string, createdAt time.Time) *Rating {
	return &Rating{
		id:        id,
		requestID: requestID,
		raterID:   raterID,
		raterRole: raterRole,
		ratedID:   ratedID,
		score:     score,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) RequestID() uuid.UUID { return r.requestID }
func (r *Rating) RaterID() uuid.UUID   { return r.raterID }
func (r *Rating) RaterRole() RaterRole { return r.raterRole }
func (r *Rating) RatedID() uuid.UUID   { return r.ratedID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() *string     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

// RoundAverage rounds an average score to one decimal place.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}
