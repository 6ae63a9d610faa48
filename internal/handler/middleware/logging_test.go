//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLogged(t *testing.T, handler gin.HandlerFunc, requestID string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var out bytes.Buffer
	l := newLogger(config.LogConfig{Level: "info", Format: "json", TimeFormat: "2006-01-02"}, &out)

	router := gin.New()
	router.Use(l.LoggingMiddleware())
	router.GET("/probe", handler)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if requestID != "" {
		req.Header.Set(headerRequestID, requestID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line), out.String())
	return w, line
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("generates and echoes a request id", func(t *testing.T) {
		w, line := serveLogged(t, func(c *gin.Context) {
			assert.NotEmpty(t, GetRequestID(c))
			c.Status(http.StatusNoContent)
		}, "")

		id := w.Header().Get(headerRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, line["request_id"])
		assert.Equal(t, "INFO", line["level"])
		assert.EqualValues(t, http.StatusNoContent, line["status_code"])
	})

	t.Run("keeps the caller's request id", func(t *testing.T) {
		w, line := serveLogged(t, func(c *gin.Context) { c.Status(http.StatusOK) }, "trace-42")
		assert.Equal(t, "trace-42", w.Header().Get(headerRequestID))
		assert.Equal(t, "trace-42", line["request_id"])
	})

	t.Run("server errors log at error level with a stack", func(t *testing.T) {
		_, line := serveLogged(t, func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
			c.Status(http.StatusInternalServerError)
		}, "")
		assert.Equal(t, "ERROR", line["level"])
		assert.Contains(t, line["errors"], "boom")
		assert.Contains(t, line, "stack")
	})

	t.Run("client errors log at warn level", func(t *testing.T) {
		_, line := serveLogged(t, func(c *gin.Context) { c.Status(http.StatusConflict) }, "")
		assert.Equal(t, "WARN", line["level"])
	})
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusBadGateway))
}
