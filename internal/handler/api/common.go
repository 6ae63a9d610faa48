package api

import (
	"net/http"
	"strconv"

	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/middleware"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// viewer resolves the caller set by RequireAuth. It aborts the request when
// the route was registered without auth.
func viewer(c *gin.Context) (queries.Viewer, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "Unauthorized", httperr.CodeUnauthorized, nil)
		return queries.Viewer{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "Unauthorized", httperr.CodeUnauthorized, nil)
		return queries.Viewer{}, false
	}
	return queries.Viewer{ID: userID, Role: role}, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid "+name, httperr.CodeInvalidInput, nil)
		return uuid.Nil, false
	}
	return id, true
}

// idempotencyKey is optional. A present but malformed header is rejected.
func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(headerIdempotencyKey)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", httperr.CodeInvalidInput, nil)
		return nil, false
	}
	return &key, true
}

// page reads limit and after. A missing or unparsable limit falls back to the
// default page size.
func page(c *gin.Context) (*queries.Cursor, int) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid request format", httperr.CodeInvalidInput, err.Error())
		return false
	}
	return true
}

// errInvalidBody tags a binding failure from inside a command closure so
// FromError reports it as 400.
func errInvalidBody(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput)
}
