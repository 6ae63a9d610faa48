package commands

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

// Notifier hands an outbox job to whatever delivers it (push, SMS, chat).
// A returned error puts the job back in the queue.
type Notifier interface {
	Notify(ctx context.Context, job shared.NotificationJob) error
}

// Policy is the write-side view of the matching configuration.
type Policy struct {
	VisitorCapacity   int
	EnforceCapacity   bool
	AllowResubmission bool
	IdempotencyTTL    time.Duration
}

// RequestEvent is the payload of every matching notification job.
type RequestEvent struct {
	RequestID  uuid.UUID  `json:"request_id"`
	SupplierID uuid.UUID  `json:"supplier_id"`
	VisitorID  *uuid.UUID `json:"visitor_id,omitempty"`
	Status     string     `json:"status"`
	Response   string     `json:"response_type,omitempty"`
	Score      int        `json:"score,omitempty"`
	At         time.Time  `json:"at"`
}
