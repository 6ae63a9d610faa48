package api

import (
	"context"
	"net/http"

	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GateHandler struct {
	q queries.GateQueries
}

func NewGateHandler(q queries.GateQueries) *GateHandler {
	return &GateHandler{q: q}
}

// @Summary Chat access
// @Description Whether the caller may open the chat of a matching request
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {object} resdto.GateResponse
// @Router /api/matching/requests/{id}/chat-access [get]
func (h *GateHandler) ChatAccess(c *gin.Context) {
	h.check(c, h.q.CanChat)
}

// @Summary Rating eligibility
// @Description Whether the caller may rate the counterpart of a matching request
// @Tags gates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {object} resdto.GateResponse
// @Router /api/matching/requests/{id}/rating-eligibility [get]
func (h *GateHandler) RatingEligibility(c *gin.Context) {
	h.check(c, h.q.CanRate)
}

func (h *GateHandler) check(c *gin.Context, gate func(ctx context.Context, requestID, userID uuid.UUID) (bool, error)) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	allowed, err := gate(c.Request.Context(), requestID, v.ID)
	if err != nil {
		httperr.FromError(c, err, "Gate check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.GateResponse{RequestID: requestID.String(), Allowed: allowed})
}
