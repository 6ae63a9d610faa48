package usecase

import (
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the caller identity carried by a valid access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	Authenticate(token string) (Principal, error)
}

type accessTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &accessTokenValidator{tokens: tokens}
}

// Authenticate rejects refresh tokens; only access tokens open a session.
func (v *accessTokenValidator) Authenticate(token string) (Principal, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess || claims.UserID == uuid.Nil {
		return Principal{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
