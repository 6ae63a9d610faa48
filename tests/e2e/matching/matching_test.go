//go:build e2e

package matching_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/dto/response"
	"github.com/Hunterii1/asl-market-sub001/tests/common/authtest"
	"github.com/Hunterii1/asl-market-sub001/tests/common/builder"
	"github.com/Hunterii1/asl-market-sub001/tests/common/dbtest"
	"github.com/Hunterii1/asl-market-sub001/tests/common/httptest"
	"github.com/Hunterii1/asl-market-sub001/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/api/matching/requests"

type party struct {
	id    uuid.UUID
	token string
}

type matchingSuite struct {
	e2e.SharedSuite

	supplier party
	visitor  party
	rival    party
}

func TestMatchingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(matchingSuite))
}

func (s *matchingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.supplier.id, s.supplier.token = authtest.CreateAndLogin(t, s.DB, s.Router, "supplier@example.com", string(user.RoleSupplier))
	s.visitor.id, s.visitor.token = authtest.CreateAndLogin(t, s.DB, s.Router, "visitor@example.com", string(user.RoleVisitor))
	s.rival.id, s.rival.token = authtest.CreateAndLogin(t, s.DB, s.Router, "rival@example.com", string(user.RoleVisitor))
}

func requestURL(id uuid.UUID, suffix string) string {
	return requestsURL + "/" + id.String() + suffix
}

func (s *matchingSuite) create(t *testing.T, headers map[string]string) *nethttptest.ResponseRecorder {
	t.Helper()
	body := builder.NewMatchingRequestBuilder().BuildCreateDTO()
	return httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, requestsURL, body, s.supplier.token, headers)
}

func (s *matchingSuite) createRequest(t *testing.T) uuid.UUID {
	t.Helper()
	var detail response.MatchingRequestDetailResponse
	httptest.AssertSuccessResponse(t, s.create(t, nil), http.StatusCreated, &detail)
	require.NotNil(t, detail.Request)
	return uuid.MustParse(detail.Request.ID)
}

func (s *matchingSuite) respond(t *testing.T, p party, id uuid.UUID, responseType string) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL(id, "/respond"),
		request.RespondRequest{ResponseType: responseType}, p.token)
}

func (s *matchingSuite) gate(t *testing.T, p party, id uuid.UUID, name string) bool {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestURL(id, "/"+name), nil, p.token)
	var res response.GateResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res.Allowed
}

func (s *matchingSuite) TestFullMatch() {
	s.Run("create, accept, close and rate", func() {
		t := s.T()

		id := s.createRequest(t)
		assert.Equal(t, "pending", dbtest.RequestStatus(t, s.DB, id))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/available", nil, s.visitor.token)
		var feed response.MatchingRequestListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &feed)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, id.String(), feed.Items[0].ID)
		assert.Equal(t, []string{"Iraq", "UAE"}, feed.Items[0].DestinationCountries)

		w = s.respond(t, s.visitor, id, "accepted")
		var accepted response.RespondResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &accepted)
		assert.True(t, accepted.Accepted)
		assert.Equal(t, "accepted", dbtest.RequestStatus(t, s.DB, id))

		w = s.respond(t, s.rival, id, "accepted")
		httptest.AssertErrorCode(t, w, http.StatusConflict, "REQUEST_ALREADY_TAKEN")

		assert.True(t, s.gate(t, s.supplier, id, "chat-access"))
		assert.True(t, s.gate(t, s.visitor, id, "chat-access"))
		assert.False(t, s.gate(t, s.rival, id, "chat-access"))
		assert.True(t, s.gate(t, s.visitor, id, "rating-eligibility"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/available", nil, s.rival.token)
		feed = response.MatchingRequestListResponse{}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &feed)
		assert.Empty(t, feed.Items, "accepted requests leave the feed")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL(id, "/close"), nil, s.visitor.token)
		var closed response.MatchingRequestDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &closed)
		assert.Equal(t, "completed", closed.Request.Status)
		assert.NotNil(t, closed.Request.CompletedAt)
		assert.False(t, s.gate(t, s.visitor, id, "chat-access"), "chat closes with the request")

		rate := request.SubmitRatingRequest{Rating: 5}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL(id, "/rating"), rate, s.supplier.token)
		var rated response.SubmitRatingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rated)
		assert.Equal(t, s.visitor.id.String(), rated.RatedID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL(id, "/rating"), rate, s.supplier.token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "ALREADY_RATED")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL(id, "/rating"), rate, s.rival.token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/matching/users/"+s.visitor.id.String()+"/ratings", nil, s.rival.token)
		var ratings response.UserRatingsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ratings)
		assert.Equal(t, int64(1), ratings.Summary.RatingCount)
		assert.InDelta(t, 5.0, ratings.Summary.AverageRating, 0.001)
		require.Len(t, ratings.Items, 1)
		assert.Equal(t, "supplier", ratings.Items[0].RaterRole)
	})
}

func (s *matchingSuite) TestCreate() {
	s.Run("idempotent retry returns the same request", func() {
		t := s.T()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		body := builder.NewMatchingRequestBuilder().BuildCreateDTO()

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, requestsURL, body, s.supplier.token, headers)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, requestsURL, body, s.supplier.token, headers)
		require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
		httptest.AssertHeaders(t, second, map[string]string{"Idempotent-Replayed": "true"})

		var a, b response.MatchingRequestDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &a))
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &b))
		assert.Equal(t, a.Request.ID, b.Request.ID)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM matching_requests WHERE supplier_id = $1", s.supplier.id))
	})

	s.Run("key reused with a different body", func() {
		t := s.T()
		key := uuid.NewString()
		headers := map[string]string{"Idempotency-Key": key}

		require.Equal(t, http.StatusCreated, s.create(t, headers).Code)

		body := builder.NewMatchingRequestBuilder().With(func(b *builder.MatchingRequestBuilder) { b.ProductName = "Dates" }).BuildCreateDTO()
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, requestsURL, body, s.supplier.token, headers)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED")
	})

	s.Run("malformed idempotency key", func() {
		t := s.T()
		w := s.create(t, map[string]string{"Idempotency-Key": "retry-1"})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("deadline in the past", func() {
		t := s.T()
		body := builder.NewMatchingRequestBuilder().WithExpiresAt(time.Now().Add(-time.Hour)).BuildCreateDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, s.supplier.token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("visitors cannot post", func() {
		t := s.T()
		body := builder.NewMatchingRequestBuilder().BuildCreateDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, s.visitor.token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("unapproved supplier cannot post", func() {
		t := s.T()
		dbtest.SetUserApproved(t, s.DB, s.supplier.id, false)
		w := s.create(t, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *matchingSuite) TestLazyExpiry() {
	s.Run("respond on an overdue request expires it", func() {
		t := s.T()
		id := dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "active", time.Now().Add(time.Hour), nil)
		dbtest.ExpireMatchingRequest(t, s.DB, id)

		w := s.respond(t, s.visitor, id, "accepted")
		httptest.AssertErrorCode(t, w, http.StatusConflict, "REQUEST_EXPIRED")
		assert.Equal(t, "expired", dbtest.RequestStatus(t, s.DB, id))
		assert.Zero(t, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM matching_responses WHERE request_id = $1", id))
	})

	s.Run("overdue requests leave the feed", func() {
		t := s.T()
		live := dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "active", time.Now().Add(time.Hour), nil)
		overdue := dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "active", time.Now().Add(time.Hour), nil)
		dbtest.ExpireMatchingRequest(t, s.DB, overdue)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/available", nil, s.visitor.token)
		var feed response.MatchingRequestListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &feed)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, live.String(), feed.Items[0].ID)
	})

	s.Run("owner sees the expired status", func() {
		t := s.T()
		id := dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "accepted", time.Now().Add(time.Hour), &s.visitor.id)
		dbtest.ExpireMatchingRequest(t, s.DB, id)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestURL(id, ""), nil, s.supplier.token)
		var detail response.MatchingRequestDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		assert.Equal(t, "expired", detail.Request.Status)
		assert.False(t, detail.CanChat)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestURL(id, ""), nil, s.supplier.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
			`SELECT count(*) FROM notification_jobs
			 WHERE topic = 'request.expired'
			   AND payload->>'request_id' = $1
			   AND payload->>'visitor_id' = $2`,
			id.String(), s.visitor.id.String()))
	})

	s.Run("listing own requests notifies each expiry once", func() {
		t := s.T()
		overdue := dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "active", time.Now().Add(time.Hour), nil)
		dbtest.ExpireMatchingRequest(t, s.DB, overdue)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/mine", nil, s.supplier.token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
		assert.Equal(t, "expired", dbtest.RequestStatus(t, s.DB, overdue))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM notification_jobs WHERE topic = 'request.expired' AND payload->>'request_id' = $1",
			overdue.String()))
	})
}

func (s *matchingSuite) TestOwnerActions() {
	s.Run("extend and cancel", func() {
		t := s.T()
		id := s.createRequest(t)

		later := time.Now().Add(96 * time.Hour).UTC().Truncate(time.Second)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL(id, "/extend"),
			request.ExtendMatchingRequestRequest{ExpiresAt: later}, s.supplier.token)
		var extended response.MatchingRequestDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &extended)
		assert.True(t, later.Equal(extended.Request.ExpiresAt))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, requestURL(id, ""), nil, s.supplier.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "cancelled", dbtest.RequestStatus(t, s.DB, id))

		w = s.respond(t, s.visitor, id, "accepted")
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("another supplier cannot cancel", func() {
		t := s.T()
		id := s.createRequest(t)
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other-supplier@example.com", string(user.RoleSupplier))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, requestURL(id, ""), nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *matchingSuite) TestCapacity() {
	s.Run("accepted requests count against the visitor", func() {
		t := s.T()
		dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "accepted", time.Now().Add(time.Hour), &s.visitor.id)
		overdue := dbtest.CreateMatchingRequest(t, s.DB, s.supplier.id, "accepted", time.Now().Add(time.Hour), &s.visitor.id)
		dbtest.ExpireMatchingRequest(t, s.DB, overdue)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/matching/visitors/"+s.visitor.id.String()+"/capacity", nil, s.visitor.token)
		var capacity response.CapacityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &capacity)
		assert.Equal(t, 1, capacity.ActiveRequests)
		assert.Equal(t, s.Config.Matching.VisitorCapacity-1, capacity.RemainingSlots)
	})

	s.Run("visitors cannot see each other", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/matching/visitors/"+s.visitor.id.String()+"/capacity", nil, s.rival.token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
