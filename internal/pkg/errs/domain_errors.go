package errs

// Categories. Every sentinel in the domain carries exactly one of these
// marks, and the HTTP layer maps categories to statuses.
var (
	ErrInvalidInput = New("invalid input")
	ErrForbidden    = New("forbidden")
	ErrInvalidState = New("invalid state")
	ErrNotFound     = New("not found")

	// valid request, but the current state refuses it
	ErrConflict = ErrInvalidState
)

var (
	ErrIdempotencyKeyReused  = Sentinel("idempotency key reused with a different payload", ErrConflict)
	ErrIdempotencyInProgress = Sentinel("idempotency key is still being processed", ErrConflict)

	ErrDatabaseOperationFailed = New("database operation failed")
)
