package bootstrap

import (
	"fmt"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

// NewJWTService builds the signer for access and refresh tokens. Test configs
// skip LoadConfig, so durations are parsed here as well.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("access token duration: %w", err)
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("refresh token duration: %w", err)
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
