package api

import (
	"net/http"

	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchingHandler struct {
	cmds commands.MatchingCommands
	q    queries.MatchingQueries
}

func NewMatchingHandler(cmds commands.MatchingCommands, q queries.MatchingQueries) *MatchingHandler {
	return &MatchingHandler{cmds: cmds, q: q}
}

// @Summary Create matching request
// @Description Supplier posts a new sourcing request. Send Idempotency-Key to make retries safe.
// @Tags matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID for duplicate prevention"
// @Param request body reqdto.CreateMatchingRequestRequest true "Matching request"
// @Success 201 {object} resdto.MatchingRequestDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests [post]
func (h *MatchingHandler) Create(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateMatchingRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), v.ID, req, key)
	if err != nil {
		httperr.FromError(c, err, "Create matching request failed")
		return
	}
	if result.IsReplayed {
		c.Header(headerReplayed, "true")
	}
	h.respondDetail(c, result.RequestID, v, http.StatusCreated)
}

// @Summary List my matching requests
// @Description Supplier's own requests, newest first
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, active, accepted, completed, cancelled or expired"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.MatchingRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/matching/requests/mine [get]
func (h *MatchingHandler) ListMine(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	cursor, limit := page(c)
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	views, next, err := h.q.ListMine(c.Request.Context(), v.ID, status, cursor, limit)
	if err != nil {
		httperr.FromError(c, err, "Failed to list matching requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchingRequestList(views, next))
}

// @Summary List available matching requests
// @Description Open requests an approved visitor can still respond to
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.MatchingRequestListResponse
// @Failure 403 {object} httperr.Response
// @Router /api/matching/requests/available [get]
func (h *MatchingHandler) ListAvailable(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	cursor, limit := page(c)

	views, next, err := h.q.ListAvailable(c.Request.Context(), v, cursor, limit)
	if err != nil {
		httperr.FromError(c, err, "Failed to list available requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchingRequestList(views, next))
}

// @Summary Get matching request
// @Description Request detail as seen by the caller
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {object} resdto.MatchingRequestDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/matching/requests/{id} [get]
func (h *MatchingHandler) Get(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondDetail(c, id, v, http.StatusOK)
}

// @Summary Update matching request
// @Description Partial update by the owner while the request is pending or active
// @Tags matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Param request body reqdto.UpdateMatchingRequestRequest true "Fields to change"
// @Success 200 {object} resdto.MatchingRequestDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests/{id} [put]
func (h *MatchingHandler) Update(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateMatchingRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, v.ID, req); err != nil {
		httperr.FromError(c, err, "Update failed")
		return
	}
	h.respondDetail(c, id, v, http.StatusOK)
}

// @Summary Cancel matching request
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {object} resdto.MatchingRequestDetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests/{id} [delete]
func (h *MatchingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		return h.cmds.Cancel(c.Request.Context(), id, v.ID)
	})
}

// @Summary Close matching request
// @Description Mark an accepted request as completed. Either party may close it.
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {object} resdto.MatchingRequestDetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests/{id}/close [post]
func (h *MatchingHandler) Close(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		return h.cmds.Close(c.Request.Context(), id, v.ID)
	})
}

// @Summary Extend matching request
// @Description Move the expiration of a live request further out
// @Tags matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Param request body reqdto.ExtendMatchingRequestRequest true "New expiration"
// @Success 200 {object} resdto.MatchingRequestDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests/{id}/extend [post]
func (h *MatchingHandler) Extend(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		var req reqdto.ExtendMatchingRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return errInvalidBody(err)
		}
		return h.cmds.Extend(c.Request.Context(), id, v.ID, req.ExpiresAt)
	})
}

func (h *MatchingHandler) transition(c *gin.Context, run func(c *gin.Context, id uuid.UUID, v queries.Viewer) error) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := run(c, id, v); err != nil {
		httperr.FromError(c, err, "Matching request update failed")
		return
	}
	h.respondDetail(c, id, v, http.StatusOK)
}

// respondDetail re-reads the request after a write so the caller gets the
// same shape as GET.
func (h *MatchingHandler) respondDetail(c *gin.Context, id uuid.UUID, v queries.Viewer, status int) {
	detail, err := h.q.GetDetail(c.Request.Context(), id, v)
	if err != nil {
		httperr.FromError(c, err, "Failed to load matching request")
		return
	}
	c.JSON(status, resdto.FromMatchingRequestDetail(detail))
}
