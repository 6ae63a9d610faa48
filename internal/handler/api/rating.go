package api

import (
	"net/http"

	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type RatingHandler struct {
	cmds commands.RatingCommands
	q    queries.RatingQueries
}

func NewRatingHandler(cmds commands.RatingCommands, q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{cmds: cmds, q: q}
}

// @Summary Rate the counterpart
// @Description One rating per party once the request is accepted or completed
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Matching request ID"
// @Param request body reqdto.SubmitRatingRequest true "Rating"
// @Success 201 {object} resdto.SubmitRatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matching/requests/{id}/rating [post]
func (h *RatingHandler) Submit(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubmitRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), requestID, v.ID, req)
	if err != nil {
		httperr.FromError(c, err, "Rating failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitRatingResponse{
		RatingID: result.RatingID.String(),
		RatedID:  result.RatedID.String(),
	})
}

// @Summary Ratings received by a user
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.UserRatingsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/matching/users/{id}/ratings [get]
func (h *RatingHandler) ListForUser(c *gin.Context) {
	if _, ok := viewer(c); !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit := page(c)

	var (
		summary *queries.RatingSummary
		views   []*queries.RatingView
		next    *queries.Cursor
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		summary, err = h.q.SummaryForUser(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		views, next, err = h.q.ListForUser(ctx, userID, cursor, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		httperr.FromError(c, err, "Failed to load ratings")
		return
	}

	res, err := resdto.FromUserRatings(summary, views, next)
	if err != nil {
		httperr.FromError(c, err, "Failed to load ratings")
		return
	}
	c.JSON(http.StatusOK, res)
}
