// Package password hashes account passwords with bcrypt.
package password

import (
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

// bcrypt ignores input past 72 bytes, so longer secrets are rejected rather than truncated.
const maxBcryptBytes = 72

// Cost is the bcrypt work factor. Tests lower it to bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

func usable(secret string) bool {
	return secret != "" && len(secret) <= maxBcryptBytes
}

func HashPassword(secret string) (string, error) {
	if !usable(secret) {
		return "", ErrInvalidPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(digest), nil
}

// ComparePassword returns ErrComparisonFailed on mismatch; any other error means the stored hash is unusable.
func ComparePassword(hash, secret string) error {
	if hash == "" || !usable(secret) {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
