package shared

import (
	"time"

	"github.com/google/uuid"
)

type ExposureSource string

const (
	ExposureFeed     ExposureSource = "feed"
	ExposureDetail   ExposureSource = "detail"
	ExposureResponse ExposureSource = "response"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

// ExpiredRequest is a request flipped to expired by a sweep.
type ExpiredRequest struct {
	ID                uuid.UUID
	SupplierID        uuid.UUID
	AcceptedVisitorID *uuid.UUID
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}
