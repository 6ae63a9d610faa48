//go:build unit || e2e

// Package httptest drives a router in-process and inspects its JSON responses.
package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(t, router, method, path, body, bearer(authToken))
}

func PerformRequestWithCookies(t *testing.T, router http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(t, router, method, path, body, bearer(authToken), func(req *http.Request) {
		for _, c := range cookies {
			req.AddCookie(c)
		}
	})
}

func PerformRequestWithHeaders(t *testing.T, router http.Handler, method, path string, body any, authToken string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(t, router, method, path, body, bearer(authToken), func(req *http.Request) {
		for k, v := range headers {
			req.Header.Set(k, v)
		}
	})
}

func perform(t *testing.T, router http.Handler, method, path string, body any, prepare ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err, "encode request body")
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, p := range prepare {
		p(req)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func ExtractCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}

// ExtractCookie returns nil when the response did not set name.
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range ExtractCookies(w) {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()
	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "decode response body")
	return err
}
