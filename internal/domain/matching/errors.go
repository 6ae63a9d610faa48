package matching

import "github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

var (
	ErrInvalidStatus      = errs.Sentinel("invalid matching request status", errs.ErrInvalidInput)
	ErrEmptyProductName   = errs.Sentinel("product name cannot be empty", errs.ErrInvalidInput)
	ErrProductNameTooLong = errs.Sentinel("product name exceeds maximum length", errs.ErrInvalidInput)
	ErrEmptyQuantity      = errs.Sentinel("quantity cannot be empty", errs.ErrInvalidInput)
	ErrEmptyUnit          = errs.Sentinel("unit cannot be empty", errs.ErrInvalidInput)
	ErrNoCountries        = errs.Sentinel("at least one destination country is required", errs.ErrInvalidInput)
	ErrEmptyPrice         = errs.Sentinel("price cannot be empty", errs.ErrInvalidInput)
	ErrInvalidCurrency    = errs.Sentinel("currency must be a 3 letter code", errs.ErrInvalidInput)
	ErrFieldTooLong       = errs.Sentinel("field exceeds maximum length", errs.ErrInvalidInput)
	ErrExpiryInPast       = errs.Sentinel("expiration must be in the future", errs.ErrInvalidInput)
	ErrExpiryNotExtended  = errs.Sentinel("new expiration must be later than the current one", errs.ErrInvalidInput)

	ErrNotOwner = errs.Sentinel("only the supplier who created the request can do this", errs.ErrForbidden)
	ErrNotParty = errs.Sentinel("user is not a party to this matching request", errs.ErrForbidden)

	ErrInvalidTransition   = errs.Sentinel("action is not allowed in the current request status", errs.ErrInvalidState)
	ErrRequestExpired      = errs.Sentinel("matching request has expired", errs.ErrInvalidState)
	ErrRequestAlreadyTaken = errs.Sentinel("matching request was already accepted by another visitor", errs.ErrConflict)

	ErrRequestNotFound = errs.Sentinel("matching request not found", errs.ErrNotFound)
)
