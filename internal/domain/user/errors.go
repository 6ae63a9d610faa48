package user

import "github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

var (
	ErrInvalidEmail    = errs.Sentinel("invalid email format", errs.ErrInvalidInput)
	ErrInvalidRole     = errs.Sentinel("invalid role", errs.ErrInvalidInput)
	ErrPasswordTooWeak = errs.Sentinel("password must be at least 8 characters long", errs.ErrInvalidInput)
	ErrPasswordTooLong = errs.Sentinel("password must be at most 72 bytes", errs.ErrInvalidInput)
	ErrEmptyFullName   = errs.Sentinel("full name cannot be empty", errs.ErrInvalidInput)

	ErrNotSupplier = errs.Sentinel("only approved suppliers can perform this action", errs.ErrForbidden)
	ErrNotVisitor  = errs.Sentinel("only approved visitors can perform this action", errs.ErrForbidden)
)
