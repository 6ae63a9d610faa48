//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors httperr.Response without importing the handler layer.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the public message contains
// msg. An empty msg only checks the status and envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}

// AssertErrorCode checks the machine readable code clients branch on.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, code string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	assert.Equal(t, code, body.Error.Code, "body: %s", w.Body.String())
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String())
	return body
}
