package api

import (
	"net/http"
	"strconv"

	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CapacityHandler struct {
	q queries.CapacityQueries
}

func NewCapacityHandler(q queries.CapacityQueries) *CapacityHandler {
	return &CapacityHandler{q: q}
}

// @Summary Visitor capacity list
// @Description Approved visitors with their active accepted requests
// @Tags capacity
// @Produce json
// @Security BearerAuth
// @Param near_capacity query bool false "Only visitors one slot from the limit"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.CapacityListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/matching/visitors/capacity [get]
func (h *CapacityHandler) List(c *gin.Context) {
	nearOnly, err := strconv.ParseBool(c.DefaultQuery("near_capacity", "false"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "near_capacity must be a boolean", httperr.CodeInvalidInput, nil)
		return
	}
	cursor, limit := page(c)

	views, next, err := h.q.ListVisitors(c.Request.Context(), nearOnly, cursor, limit)
	if err != nil {
		httperr.FromError(c, err, "Failed to list capacity")
		return
	}
	res, err := resdto.FromCapacityViews(views, next)
	if err != nil {
		httperr.FromError(c, err, "Failed to list capacity")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Visitors near capacity
// @Description Visitors close to the limit, most loaded first
// @Tags capacity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 20, max 200)"
// @Success 200 {object} resdto.CapacityListResponse
// @Router /api/matching/visitors/capacity/near [get]
func (h *CapacityHandler) Near(c *gin.Context) {
	_, limit := page(c)

	views, err := h.q.NearCapacity(c.Request.Context(), limit)
	if err != nil {
		httperr.FromError(c, err, "Failed to list capacity")
		return
	}
	res, err := resdto.FromCapacityViews(views, nil)
	if err != nil {
		httperr.FromError(c, err, "Failed to list capacity")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Capacity of one visitor
// @Tags capacity
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visitor ID"
// @Success 200 {object} resdto.CapacityResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/matching/visitors/{id}/capacity [get]
func (h *CapacityHandler) ForVisitor(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	visitorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !queries.CanViewCapacity(v, visitorID) {
		httperr.AbortWithCode(c, http.StatusForbidden, nil, "Forbidden", httperr.CodeForbidden, nil)
		return
	}

	view, err := h.q.CapacityFor(c.Request.Context(), visitorID)
	if err != nil {
		httperr.FromError(c, err, "Failed to load capacity")
		return
	}
	res, err := resdto.FromCapacityView(view)
	if err != nil {
		httperr.FromError(c, err, "Failed to load capacity")
		return
	}
	c.JSON(http.StatusOK, res)
}
