package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 128

	stackLines = 12
)

// LoggingMiddleware writes one access log line per request. The request id is
// taken from X-Request-ID when the caller sends one and echoed back either way.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(headerRequestID, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		// auth runs inside c.Next, so the caller is only known now
		if id, ok := GetUserID(c); ok {
			role, _ := GetUserRole(c)
			attrs = append(attrs, slog.String("user_id", id.String()), slog.String("role", role.String()))
		}
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
			if status >= http.StatusInternalServerError {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(c.Errors.Last().Err, stackLines)))
			}
		}

		l.logger.LogAttrs(c.Request.Context(), levelFor(status), "request completed", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
