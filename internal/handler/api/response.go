package api

import (
	"net/http"

	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	cmds commands.ResponseCommands
	q    queries.ResponseQueries
}

func NewResponseHandler(cmds commands.ResponseCommands, q queries.ResponseQueries) *ResponseHandler {
	return &ResponseHandler{cmds: cmds, q: q}
}

// @Summary Respond to matching request
// @Description Visitor accepts, rejects or asks a question. The first acceptance wins.
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Param Idempotency-Key header string false "UUID for duplicate prevention"
// @Param request body reqdto.RespondRequest true "Response"
// @Success 201 {object} resdto.RespondResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests/{id}/respond [post]
func (h *ResponseHandler) Respond(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.RespondRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	result, err := h.cmds.Respond(ctx, requestID, v.ID, req, key)
	if err != nil {
		httperr.FromError(c, err, "Respond failed")
		return
	}
	if result.IsReplayed {
		c.Header(headerReplayed, "true")
	}

	view, err := h.q.GetMine(ctx, requestID, v.ID)
	if err != nil {
		httperr.FromError(c, err, "Failed to load response")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRespondResult(result, view))
}

// @Summary List responses of a matching request
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {array} resdto.VisitorResponseResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/matching/requests/{id}/responses [get]
func (h *ResponseHandler) ListByRequest(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	views, err := h.q.ListByRequest(c.Request.Context(), requestID, v)
	if err != nil {
		httperr.FromError(c, err, "Failed to list responses")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResponseViews(views))
}

// @Summary Get my response
// @Description The caller's own response to a matching request
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Success 200 {object} resdto.VisitorResponseResponse
// @Failure 404 {object} httperr.Response
// @Router /api/matching/requests/{id}/responses/mine [get]
func (h *ResponseHandler) GetMine(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetMine(c.Request.Context(), requestID, v.ID)
	if err != nil {
		httperr.FromError(c, err, "Failed to load response")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResponseView(view))
}
