package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the newest public error a handler recorded without
// writing a body. Handlers that aborted with a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
					slog.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Code = httperr.CodeInternalServerError
	return resp
}
