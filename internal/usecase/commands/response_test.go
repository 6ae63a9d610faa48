//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/capacity"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"
	"github.com/Hunterii1/asl-market-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accept = reqdto.RespondRequest{ResponseType: "accepted"}
	reject = reqdto.RespondRequest{ResponseType: "rejected", Message: strPtr("price is too high")}
)

func TestResponseCommands_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("acceptance takes the request", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		result, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.False(t, result.IsReplayed)

		stored, _ := f.uow.Request(req.ID())
		assert.Equal(t, matching.StatusAccepted, stored.Status())
		require.NotNil(t, stored.AcceptedVisitorID())
		assert.Equal(t, f.visitor.ID(), *stored.AcceptedVisitorID())

		responses := f.uow.Responses(req.ID())
		require.Len(t, responses, 1)
		assert.Equal(t, result.ResponseID, responses[0].ID())

		source, ok := f.uow.Exposure(req.ID(), f.visitor.ID())
		require.True(t, ok)
		assert.Equal(t, shared.ExposureResponse, source)

		assert.Len(t, f.uow.Jobs(matching.TopicResponseReceived), 1)
		assert.Len(t, f.uow.Jobs(matching.TopicRequestAccepted), 1)
	})

	t.Run("rejection leaves the request open", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		result, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, nil)
		require.NoError(t, err)
		assert.False(t, result.Accepted)

		assert.Equal(t, matching.StatusActive, f.status(t, req.ID()))
		require.Len(t, f.uow.Responses(req.ID()), 1)
		assert.Equal(t, "price is too high", *f.uow.Responses(req.ID())[0].Message())
		assert.Len(t, f.uow.Jobs(matching.TopicResponseReceived), 1)
		assert.Empty(t, f.uow.Jobs(matching.TopicRequestAccepted))
	})

	t.Run("second acceptance loses", func(t *testing.T) {
		f := newFixture(t)
		late := f.addVisitor(t)
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		require.NoError(t, err)

		_, err = cmd.Respond(ctx, req.ID(), late.ID(), accept, nil)
		assert.ErrorIs(t, err, matching.ErrRequestAlreadyTaken)

		// questions on a taken request are refused as well
		_, err = cmd.Respond(ctx, req.ID(), late.ID(), reqdto.RespondRequest{ResponseType: "question", Message: strPtr("still open?")}, nil)
		assert.ErrorIs(t, err, matching.ErrRequestAlreadyTaken)

		stored, _ := f.uow.Request(req.ID())
		assert.Equal(t, f.visitor.ID(), *stored.AcceptedVisitorID())
		assert.Len(t, f.uow.Responses(req.ID()), 1)
	})

	t.Run("question needs a message", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reqdto.RespondRequest{ResponseType: "question"}, nil)
		assert.ErrorIs(t, err, response.ErrMessageRequired)
		assert.Empty(t, f.uow.Responses(req.ID()))
	})

	t.Run("unknown response type", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reqdto.RespondRequest{ResponseType: "maybe"}, nil)
		assert.ErrorIs(t, err, response.ErrInvalidType)
	})

	t.Run("only approved visitors respond", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		inactive := f.addUser(t, builder.NewUserBuilder().WithEmail("idle@example.com").AsVisitor().AsInactive())
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		for _, id := range []uuid.UUID{f.supplier.ID(), inactive.ID(), uuid.New()} {
			_, err := cmd.Respond(ctx, req.ID(), id, accept, nil)
			assert.ErrorIs(t, err, user.ErrNotVisitor)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		_, err := cmd.Respond(ctx, uuid.New(), f.visitor.ID(), accept, nil)
		assert.ErrorIs(t, err, matching.ErrRequestNotFound)
	})

	t.Run("overdue request is expired on the spot", func(t *testing.T) {
		f := newFixture(t)
		req := f.overdueRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())
		key := uuid.New()

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, &key)
		assert.ErrorIs(t, err, matching.ErrRequestExpired)

		assert.Equal(t, matching.StatusExpired, f.status(t, req.ID()))
		assert.Len(t, f.uow.Jobs(matching.TopicRequestExpired), 1)
		assert.Empty(t, f.uow.Responses(req.ID()))
		assert.Equal(t, 1, f.uow.Commits)

		_, claimed := f.uow.IdempotencyRecord(key, f.visitor.ID())
		assert.False(t, claimed)
	})

	t.Run("a request that expires while open", func(t *testing.T) {
		f := newFixture(t)
		req := f.request(builder.NewMatchingRequestBuilder().WithExpiresAt(f.clock.Now().Add(time.Minute)))
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		f.clock.Add(2 * time.Minute)
		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, nil)
		assert.ErrorIs(t, err, matching.ErrRequestExpired)
		assert.Equal(t, matching.StatusExpired, f.status(t, req.ID()))
	})
}

func TestResponseCommands_ConcurrentAcceptance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.openRequest()
	cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

	const visitors = 20
	ids := make([]uuid.UUID, visitors)
	for i := range ids {
		ids[i] = f.addVisitor(t).ID()
	}

	failures := make([]error, visitors)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, failures[i] = cmd.Respond(ctx, req.ID(), ids[i], accept, nil)
		}(i)
	}
	close(start)
	wg.Wait()

	var winner uuid.UUID
	wins := 0
	for i, err := range failures {
		if err == nil {
			wins++
			winner = ids[i]
			continue
		}
		assert.ErrorIs(t, err, matching.ErrRequestAlreadyTaken)
	}
	require.Equal(t, 1, wins)

	stored, _ := f.uow.Request(req.ID())
	assert.Equal(t, matching.StatusAccepted, stored.Status())
	assert.Equal(t, winner, *stored.AcceptedVisitorID())
	assert.Len(t, f.uow.Responses(req.ID()), 1)
	assert.Len(t, f.uow.Jobs(matching.TopicRequestAccepted), 1)
}

func TestResponseCommands_Resubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled by default", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, nil)
		require.NoError(t, err)

		_, err = cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		assert.ErrorIs(t, err, response.ErrAlreadyResponded)
		assert.Equal(t, matching.StatusActive, f.status(t, req.ID()))
	})

	t.Run("an earlier question counts as a response", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		f.uow.AddResponse(response.ReconstructResponse(uuid.New(), req.ID(), f.visitor.ID(),
			response.TypeQuestion, strPtr("Is the price FOB?"), f.clock.Now().Add(-time.Hour)))
		cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		assert.ErrorIs(t, err, response.ErrAlreadyResponded)
		assert.Len(t, f.uow.Responses(req.ID()), 1)
	})

	t.Run("enabled lets a visitor change their mind", func(t *testing.T) {
		f := newFixture(t)
		req := f.openRequest()
		policy := defaultPolicy()
		policy.AllowResubmission = true
		cmd := commands.NewResponseCommands(f.uow, f.clock, policy)

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, nil)
		require.NoError(t, err)
		result, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.Len(t, f.uow.Responses(req.ID()), 2)
		assert.Equal(t, matching.StatusAccepted, f.status(t, req.ID()))
	})
}

func TestResponseCommands_Capacity(t *testing.T) {
	ctx := context.Background()

	enforced := func(limit int) commands.Policy {
		p := defaultPolicy()
		p.EnforceCapacity = true
		p.VisitorCapacity = limit
		return p
	}

	t.Run("full visitor cannot accept", func(t *testing.T) {
		f := newFixture(t)
		f.request(builder.NewMatchingRequestBuilder().AcceptedBy(f.visitor.ID()).WithExpiresAt(f.clock.Now().Add(time.Hour)))
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, enforced(1))

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		assert.ErrorIs(t, err, capacity.ErrCapacityReached)
		assert.Equal(t, matching.StatusActive, f.status(t, req.ID()))
		assert.Empty(t, f.uow.Responses(req.ID()))

		// rejections do not use a slot
		_, err = cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, nil)
		assert.NoError(t, err)
	})

	t.Run("overdue acceptances do not count", func(t *testing.T) {
		f := newFixture(t)
		f.request(builder.NewMatchingRequestBuilder().AcceptedBy(f.visitor.ID()).WithExpiresAt(f.clock.Now().Add(-time.Hour)))
		req := f.openRequest()
		cmd := commands.NewResponseCommands(f.uow, f.clock, enforced(1))

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		assert.NoError(t, err)
	})

	t.Run("not enforced", func(t *testing.T) {
		f := newFixture(t)
		f.request(builder.NewMatchingRequestBuilder().AcceptedBy(f.visitor.ID()).WithExpiresAt(f.clock.Now().Add(time.Hour)))
		req := f.openRequest()
		policy := defaultPolicy()
		policy.VisitorCapacity = 1
		cmd := commands.NewResponseCommands(f.uow, f.clock, policy)

		_, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, nil)
		assert.NoError(t, err)
	})
}

func TestResponseCommands_Idempotency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.openRequest()
	other := f.openRequest()
	cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())
	key := uuid.New()

	first, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, &key)
	require.NoError(t, err)

	again, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), accept, &key)
	require.NoError(t, err)
	assert.True(t, again.IsReplayed)
	assert.True(t, again.Accepted)
	assert.Equal(t, first.ResponseID, again.ResponseID)
	assert.Len(t, f.uow.Responses(req.ID()), 1)
	assert.Len(t, f.uow.Jobs(matching.TopicResponseReceived), 1)

	// the key covers the target request too
	_, err = cmd.Respond(ctx, other.ID(), f.visitor.ID(), accept, &key)
	assert.ErrorIs(t, err, errs.ErrIdempotencyKeyReused)
	assert.Empty(t, f.uow.Responses(other.ID()))
}

func TestResponseCommands_ReplayAfterDeadline(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.request(builder.NewMatchingRequestBuilder().WithExpiresAt(f.clock.Now().Add(time.Minute)))
	cmd := commands.NewResponseCommands(f.uow, f.clock, defaultPolicy())
	key := uuid.New()

	first, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, &key)
	require.NoError(t, err)

	f.clock.Add(2 * time.Minute)

	again, err := cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, &key)
	require.NoError(t, err)
	assert.True(t, again.IsReplayed)
	assert.False(t, again.Accepted)
	assert.Equal(t, first.ResponseID, again.ResponseID)
	assert.Len(t, f.uow.Responses(req.ID()), 1)

	assert.Equal(t, matching.StatusExpired, f.status(t, req.ID()))
	assert.Len(t, f.uow.Jobs(matching.TopicRequestExpired), 1)

	fresh := uuid.New()
	_, err = cmd.Respond(ctx, req.ID(), f.visitor.ID(), reject, &fresh)
	assert.ErrorIs(t, err, matching.ErrRequestExpired)
}
