package cookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// The refresh token is only ever sent to the auth endpoints.
	refreshTokenPath = "/api/auth"
)

type Tokens struct {
	Access     string
	Refresh    string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, t Tokens) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, t.Access, int(t.AccessTTL.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, t.Refresh, int(t.RefreshTTL.Seconds()), refreshTokenPath, cfg.Domain, cfg.Secure, true)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, refreshTokenPath, cfg.Domain, cfg.Secure, true)
}

// AccessToken prefers the Authorization header; browsers fall back to the
// cookie.
func AccessToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		if token := strings.TrimSpace(header[len("Bearer "):]); token != "" {
			return token
		}
	}
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
