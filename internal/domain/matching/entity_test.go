//go:build unit

package matching_test

import (
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDetails(t *testing.T) matching.Details {
	t.Helper()
	d, err := matching.NewDetails(matching.DetailsInput{
		ProductName:          "Pistachio",
		Quantity:             "20",
		Unit:                 "ton",
		DestinationCountries: "iraq, UAE",
		Price:                "8000",
		Currency:             "usd",
	})
	require.NoError(t, err)
	return d
}

func TestNewRequest(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	supplierID := uuid.New()

	t.Run("starts pending with the given deadline", func(t *testing.T) {
		req, err := matching.NewRequest(supplierID, mustDetails(t), now.Add(48*time.Hour), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, matching.StatusPending, req.Status())
		assert.Equal(t, supplierID, req.SupplierID())
		assert.Equal(t, now, req.CreatedAt())
		assert.Equal(t, now, req.UpdatedAt())
		assert.Nil(t, req.AcceptedVisitorID())
		assert.Equal(t, 48*time.Hour, req.RemainingTime(now))
		assert.True(t, req.IsAvailable(now))
	})

	t.Run("rejects a deadline that is not in the future", func(t *testing.T) {
		for _, expiresAt := range []time.Time{now, now.Add(-time.Second)} {
			_, err := matching.NewRequest(supplierID, mustDetails(t), expiresAt, now)
			assert.ErrorIs(t, err, matching.ErrExpiryInPast)
		}
	})
}

func TestRequestExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("overdue live request is reported expired before the flip", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithExpiresAt(now.Add(-time.Minute)).BuildDomain()

		assert.True(t, req.IsExpired(now))
		assert.False(t, req.IsAvailable(now))
		assert.Equal(t, time.Duration(0), req.RemainingTime(now))
		assert.Equal(t, matching.StatusActive, req.Status())
	})

	t.Run("ExpireIfDue flips once", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithExpiresAt(now.Add(-time.Minute)).BuildDomain()

		assert.True(t, req.ExpireIfDue(now))
		assert.Equal(t, matching.StatusExpired, req.Status())
		assert.Equal(t, now, req.UpdatedAt())
		assert.False(t, req.ExpireIfDue(now.Add(time.Hour)))
	})

	t.Run("accepted request expires too", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().AcceptedBy(uuid.New()).WithExpiresAt(now.Add(-time.Second)).BuildDomain()

		assert.True(t, req.ExpireIfDue(now))
		assert.Equal(t, matching.StatusExpired, req.Status())
	})

	t.Run("deadline instant counts as expired", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithExpiresAt(now).BuildDomain()

		assert.True(t, req.IsExpired(now))
		assert.False(t, req.IsAvailable(now))
		assert.Equal(t, time.Duration(0), req.RemainingTime(now))
		assert.ErrorIs(t, req.CheckRespondable(now), matching.ErrRequestExpired)
		assert.True(t, req.ExpireIfDue(now))
	})

	t.Run("one tick before the deadline is live", func(t *testing.T) {
		before := now.Add(-time.Nanosecond)
		req := builder.NewMatchingRequestBuilder().WithExpiresAt(now).BuildDomain()

		assert.False(t, req.IsExpired(before))
		assert.True(t, req.IsAvailable(before))
		assert.Equal(t, time.Nanosecond, req.RemainingTime(before))
		assert.NoError(t, req.CheckRespondable(before))
		assert.False(t, req.ExpireIfDue(before))
	})

	t.Run("terminal requests never expire", func(t *testing.T) {
		for _, s := range []matching.Status{matching.StatusCompleted, matching.StatusCancelled} {
			req := builder.NewMatchingRequestBuilder().WithStatus(s).WithExpiresAt(now.Add(-time.Hour)).BuildDomain()
			assert.False(t, req.ExpireIfDue(now), s)
			assert.False(t, req.IsExpired(now), s)
		}
	})
}

func TestRequestAccept(t *testing.T) {
	now := time.Now().UTC()

	t.Run("first visitor wins", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().BuildDomain()
		first, second := uuid.New(), uuid.New()

		require.NoError(t, req.Accept(first, now))
		assert.Equal(t, matching.StatusAccepted, req.Status())
		require.NotNil(t, req.AcceptedVisitorID())
		assert.Equal(t, first, *req.AcceptedVisitorID())
		require.NotNil(t, req.AcceptedAt())
		assert.Equal(t, now, *req.AcceptedAt())

		err := req.Accept(second, now)
		assert.ErrorIs(t, err, matching.ErrRequestAlreadyTaken)
		assert.Equal(t, first, *req.AcceptedVisitorID())
	})

	t.Run("pending request can be accepted", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithStatus(matching.StatusPending).BuildDomain()
		require.NoError(t, req.Accept(uuid.New(), now))
		assert.Equal(t, matching.StatusAccepted, req.Status())
	})

	t.Run("overdue request reports expired", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithExpiresAt(now.Add(-time.Second)).BuildDomain()
		assert.ErrorIs(t, req.Accept(uuid.New(), now), matching.ErrRequestExpired)
	})

	t.Run("terminal request rejects responses", func(t *testing.T) {
		for _, s := range []matching.Status{matching.StatusCompleted, matching.StatusCancelled} {
			req := builder.NewMatchingRequestBuilder().WithStatus(s).BuildDomain()
			assert.ErrorIs(t, req.CheckRespondable(now), matching.ErrInvalidTransition, s)
		}
		expired := builder.NewMatchingRequestBuilder().WithStatus(matching.StatusExpired).BuildDomain()
		assert.ErrorIs(t, expired.CheckRespondable(now), matching.ErrRequestExpired)
	})
}

func TestRequestOwnerActions(t *testing.T) {
	now := time.Now().UTC()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("update details", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithSupplier(owner).BuildDomain()
		details := mustDetails(t)

		assert.ErrorIs(t, req.UpdateDetails(stranger, details, now), matching.ErrNotOwner)
		require.NoError(t, req.UpdateDetails(owner, details, now))
		assert.Equal(t, "Pistachio", req.Details().ProductName())

		accepted := builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(uuid.New()).BuildDomain()
		assert.ErrorIs(t, accepted.UpdateDetails(owner, details, now), matching.ErrInvalidTransition)
	})

	t.Run("extend", func(t *testing.T) {
		b := builder.NewMatchingRequestBuilder().WithSupplier(owner)
		req := b.BuildDomain()
		later := b.ExpiresAt.Add(24 * time.Hour)

		assert.ErrorIs(t, req.Extend(stranger, later, now), matching.ErrNotOwner)
		assert.ErrorIs(t, req.Extend(owner, now.Add(-time.Minute), now), matching.ErrExpiryInPast)
		assert.ErrorIs(t, req.Extend(owner, b.ExpiresAt, now), matching.ErrExpiryNotExtended)
		require.NoError(t, req.Extend(owner, later, now))
		assert.Equal(t, later, req.ExpiresAt())
		assert.Equal(t, matching.StatusActive, req.Status())

		accepted := builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(uuid.New()).BuildDomain()
		require.NoError(t, accepted.Extend(owner, later, now))
		assert.Equal(t, matching.StatusAccepted, accepted.Status())

		cancelled := builder.NewMatchingRequestBuilder().WithSupplier(owner).WithStatus(matching.StatusCancelled).BuildDomain()
		assert.ErrorIs(t, cancelled.Extend(owner, later, now), matching.ErrInvalidTransition)
	})

	t.Run("cancel", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(uuid.New()).BuildDomain()

		assert.ErrorIs(t, req.Cancel(stranger, now), matching.ErrNotOwner)
		require.NoError(t, req.Cancel(owner, now))
		assert.Equal(t, matching.StatusCancelled, req.Status())
		require.NotNil(t, req.CancelledAt())
		assert.ErrorIs(t, req.Cancel(owner, now), matching.ErrInvalidTransition)
	})
}

func TestRequestClose(t *testing.T) {
	now := time.Now().UTC()
	owner, visitor := uuid.New(), uuid.New()

	for _, actor := range []uuid.UUID{owner, visitor} {
		req := builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(visitor).BuildDomain()
		require.NoError(t, req.Close(actor, now))
		assert.Equal(t, matching.StatusCompleted, req.Status())
		require.NotNil(t, req.CompletedAt())
	}

	req := builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(visitor).BuildDomain()
	assert.ErrorIs(t, req.Close(uuid.New(), now), matching.ErrNotParty)

	active := builder.NewMatchingRequestBuilder().WithSupplier(owner).BuildDomain()
	assert.ErrorIs(t, active.Close(owner, now), matching.ErrInvalidTransition)
}

func TestRequestGates(t *testing.T) {
	owner, visitor, other := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name       string
		req        *matching.Request
		chatOwner  bool
		chatOther  bool
		ratingOpen bool
	}{
		{
			name: "active",
			req:  builder.NewMatchingRequestBuilder().WithSupplier(owner).BuildDomain(),
		},
		{
			name:       "accepted",
			req:        builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(visitor).BuildDomain(),
			chatOwner:  true,
			ratingOpen: true,
		},
		{
			name:       "completed",
			req:        builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(visitor).WithStatus(matching.StatusCompleted).BuildDomain(),
			ratingOpen: true,
		},
		{
			name: "expired after acceptance",
			req:  builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(visitor).WithStatus(matching.StatusExpired).BuildDomain(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.chatOwner, tt.req.CanChat(owner))
			assert.Equal(t, tt.chatOwner, tt.req.CanChat(visitor))
			assert.Equal(t, tt.chatOther, tt.req.CanChat(other))
			assert.Equal(t, tt.ratingOpen, tt.req.RatingOpen())
		})
	}
}

func TestRequestCounterpart(t *testing.T) {
	owner, visitor := uuid.New(), uuid.New()
	req := builder.NewMatchingRequestBuilder().WithSupplier(owner).AcceptedBy(visitor).BuildDomain()

	got, err := req.Counterpart(owner)
	require.NoError(t, err)
	assert.Equal(t, visitor, got)

	got, err = req.Counterpart(visitor)
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	_, err = req.Counterpart(uuid.New())
	assert.ErrorIs(t, err, matching.ErrNotParty)

	open := builder.NewMatchingRequestBuilder().WithSupplier(owner).BuildDomain()
	_, err = open.Counterpart(owner)
	assert.ErrorIs(t, err, matching.ErrNotParty)
}
