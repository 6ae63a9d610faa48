//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the server's secret so tests can skip the login round trip.
type JWTHelper struct {
	live    *jwt.Service
	expired *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()

	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err)

	return &JWTHelper{
		live: jwt.NewService(cfg.Secret, access, refresh),
		// a negative lifetime puts exp in the past at signing time
		expired: jwt.NewService(cfg.Secret, -time.Minute, -time.Minute),
	}
}

func (h *JWTHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.live.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.live.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.expired.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
