//go:build unit || e2e

// Package authtest logs test users in through the real auth endpoints or mints tokens directly.
package authtest

import (
	"net/http"
	"testing"

	"github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/cookie"
	"github.com/Hunterii1/asl-market-sub001/tests/common/dbtest"
	"github.com/Hunterii1/asl-market-sub001/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// LoginUser returns the access token the login endpoint put in its cookie.
func LoginUser(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath, request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "login set no access cookie")
	require.NotEmpty(t, access.Value)
	return access.Value
}

// CreateAndLogin inserts an approved user with the default password and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router http.Handler, email, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router http.Handler, cookies []*http.Cookie) {
	t.Helper()
	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
