package response

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxMessageLength = 2000

var (
	ErrInvalidType      = errs.Sentinel("response type must be accepted, rejected or question", errs.ErrInvalidInput)
	ErrMessageRequired  = errs.Sentinel("a question needs a message", errs.ErrInvalidInput)
	ErrMessageTooLong   = errs.Sentinel("message exceeds maximum length", errs.ErrInvalidInput)
	ErrAlreadyResponded = errs.Sentinel("visitor already responded to this request", errs.ErrConflict)
	ErrNotFound         = errs.Sentinel("response not found", errs.ErrNotFound)
)

type Type string

const (
	TypeAccepted Type = "accepted"
	TypeRejected Type = "rejected"
	TypeQuestion Type = "question"
)

func (t Type) String() string { return string(t) }

func ParseType(s string) (Type, error) {
	switch t := Type(strings.TrimSpace(s)); t {
	case TypeAccepted, TypeRejected, TypeQuestion:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

// Response is a visitor's answer to a matching request. Responses are
// immutable once recorded.
type Response struct {
	id        uuid.UUID
	requestID uuid.UUID
	visitorID uuid.UUID
	kind      Type
	message   *string
	createdAt time.Time
}

func NewResponse(requestID, visitorID uuid.UUID, kind Type, message *string, now time.Time) (*Response, error) {
	if _, err := ParseType(kind.String()); err != nil {
		return nil, err
	}

	var msg *string
	if message != nil {
		m := strings.TrimSpace(*message)
		if utf8.RuneCountInString(m) > MaxMessageLength {
			return nil, ErrMessageTooLong
		}
		if m != "" {
			msg = &m
		}
	}
	if kind == TypeQuestion && msg == nil {
		return nil, ErrMessageRequired
	}

	return &Response{
		id:        uuid.New(),
		requestID: requestID,
		visitorID: visitorID,
		kind:      kind,
		message:   msg,
		createdAt: now,
	}, nil
}

func ReconstructResponse(id, requestID, visitorID uuid.UUID, kind Type, message *string, createdAt time.Time) *Response {
	return &Response{
		id:        id,
		requestID: requestID,
		visitorID: visitorID,
		kind:      kind,
		message:   message,
		createdAt: createdAt,
	}
}

// AllowsResubmission reports whether a visitor holding previous may respond
// again when resubmission is enabled. An acceptance is final.
func AllowsResubmission(previous *Response, enabled bool) bool {
	if previous == nil {
		return true
	}
	return enabled && previous.kind != TypeAccepted
}

func (r *Response) IsAcceptance() bool { return r.kind == TypeAccepted }

func (r *Response) ID() uuid.UUID        { return r.id }
func (r *Response) RequestID() uuid.UUID { return r.requestID }
func (r *Response) VisitorID() uuid.UUID { return r.visitorID }
func (r *Response) Type() Type           { return r.kind }
func (r *Response) Message() *string     { return r.message }
func (r *Response) CreatedAt() time.Time { return r.createdAt }
