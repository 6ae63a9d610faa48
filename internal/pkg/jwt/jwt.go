// Package jwt issues and verifies the HS256 session tokens of the marketplace.
package jwt

import (
	"errors"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	issuer = "asl-market"
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

type Service struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	parser     *jwt.Parser
}

func NewService(secretKey string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		key:        []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *Service) AccessTokenDuration() time.Duration  { return s.accessTTL }
func (s *Service) RefreshTokenDuration() time.Duration { return s.refreshTTL }

func (s *Service) GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error) {
	return s.sign(userID, role, TokenTypeAccess, s.accessTTL)
}

func (s *Service) GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error) {
	return s.sign(userID, role, TokenTypeRefresh, s.refreshTTL)
}

func (s *Service) sign(userID uuid.UUID, role user.Role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// ValidateToken checks signature, issuer and expiry. It does not look at the
// token type; callers decide which type they accept.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return s.key, nil })
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
