package api

import (
	"net/http"

	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/middleware"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/cookie"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/jwt"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	users      queries.UserQueries
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		users:      users,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary User login
// @Description Login with email and password. Tokens are also set as HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "Invalid email or password", httperr.CodeUnauthorized, nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithCode(c, http.StatusForbidden, err, "Account is inactive", httperr.CodeForbidden, nil)
		case errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid request data", httperr.CodeInvalidInput, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	account, err := h.users.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.FromError(c, err, "Internal server error")
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		ExpiresIn:   int64(h.jwtService.AccessTokenDuration().Seconds()),
		User:        account,
	})
}

// @Summary Refresh tokens
// @Description Issue a new token pair from a refresh token (body or cookie)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" {
		token = cookie.RefreshToken(c)
	}
	if token == "" {
		httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "Refresh token required", httperr.CodeUnauthorized, nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithCode(c, http.StatusForbidden, err, "Account is inactive", httperr.CodeForbidden, nil)
		case errs.Is(err, commands.ErrTokenGeneration):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", httperr.CodeUnauthorized, nil)
		}
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   int64(h.jwtService.AccessTokenDuration().Seconds()),
	})
}

// @Summary User logout
// @Description Clear the auth cookies. Bearer tokens simply expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "User not authenticated", httperr.CodeUnauthorized, nil)
		return
	}

	account, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, cookie.Tokens{
		Access:     pair.AccessToken,
		Refresh:    pair.RefreshToken,
		AccessTTL:  h.jwtService.AccessTokenDuration(),
		RefreshTTL: h.jwtService.RefreshTokenDuration(),
	})
}
