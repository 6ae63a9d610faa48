//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/api"
	resdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/tests/common/httptest"
	queriesmock "github.com/Hunterii1/asl-market-sub001/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockGateQueries
	handler     *api.GateHandler

	userID uuid.UUID
	role   user.Role
}

func (s *GateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockGateQueries(s.mockCtrl)
	s.handler = api.NewGateHandler(s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleVisitor

	g := s.router.Group("/requests", fakeAuth(&s.userID, &s.role))
	g.GET("/:id/chat-access", s.handler.ChatAccess)
	g.GET("/:id/rating-eligibility", s.handler.RatingEligibility)
}

func (s *GateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGateHandlerSuite(t *testing.T) {
	suite.Run(t, new(GateHandlerTestSuite))
}

func (s *GateHandlerTestSuite) TestChatAccess() {
	requestID := uuid.New()
	url := "/requests/" + requestID.String() + "/chat-access"

	for _, allowed := range []bool{true, false} {
		s.Run("success: reports the gate", func() {
			s.mockQueries.EXPECT().CanChat(gomock.Any(), requestID, s.userID).Return(allowed, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

			var body resdto.GateResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(requestID.String(), body.RequestID)
			s.Equal(allowed, body.Allowed)
		})
	}

	s.Run("error: 404 for an unknown request", func() {
		s.mockQueries.EXPECT().CanChat(gomock.Any(), requestID, s.userID).Return(false, matching.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "matching request not found")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *GateHandlerTestSuite) TestRatingEligibility() {
	requestID := uuid.New()
	url := "/requests/" + requestID.String() + "/rating-eligibility"

	s.Run("success: eligible party", func() {
		s.mockQueries.EXPECT().CanRate(gomock.Any(), requestID, s.userID).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.GateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Allowed)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/123/rating-eligibility", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
