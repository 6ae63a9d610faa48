//go:build unit

package matching_test

import (
	"testing"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []matching.Status{
	matching.StatusPending,
	matching.StatusActive,
	matching.StatusAccepted,
	matching.StatusCompleted,
	matching.StatusCancelled,
	matching.StatusExpired,
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	actions := []matching.Action{
		matching.ActionActivate, matching.ActionEdit, matching.ActionRespond, matching.ActionAccept,
		matching.ActionExtend, matching.ActionCancel, matching.ActionClose, matching.ActionExpire,
	}
	for _, s := range allStatuses {
		if !s.IsTerminal() {
			continue
		}
		for _, a := range actions {
			next, err := matching.Next(s, a)
			assert.ErrorIs(t, err, matching.ErrInvalidTransition, "%s --%s-->", s, a)
			assert.Equal(t, s, next)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		from   matching.Status
		action matching.Action
		want   matching.Status
		ok     bool
	}{
		{matching.StatusPending, matching.ActionActivate, matching.StatusActive, true},
		{matching.StatusActive, matching.ActionActivate, matching.StatusActive, false},
		{matching.StatusActive, matching.ActionAccept, matching.StatusAccepted, true},
		{matching.StatusAccepted, matching.ActionAccept, matching.StatusAccepted, false},
		{matching.StatusAccepted, matching.ActionRespond, matching.StatusAccepted, false},
		{matching.StatusAccepted, matching.ActionEdit, matching.StatusAccepted, false},
		{matching.StatusAccepted, matching.ActionClose, matching.StatusCompleted, true},
		{matching.StatusActive, matching.ActionClose, matching.StatusActive, false},
		{matching.StatusAccepted, matching.ActionCancel, matching.StatusCancelled, true},
		{matching.StatusAccepted, matching.ActionExpire, matching.StatusExpired, true},
		{matching.StatusPending, matching.ActionExtend, matching.StatusPending, true},
	}

	for _, tt := range tests {
		got, err := matching.Next(tt.from, tt.action)
		if tt.ok {
			assert.NoError(t, err, "%s --%s-->", tt.from, tt.action)
		} else {
			assert.ErrorIs(t, err, matching.ErrInvalidTransition, "%s --%s-->", tt.from, tt.action)
		}
		assert.Equal(t, tt.want, got, "%s --%s-->", tt.from, tt.action)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := matching.ParseStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := matching.ParseStatus("archived")
	assert.ErrorIs(t, err, matching.ErrInvalidStatus)
}

func TestStatusPredicates(t *testing.T) {
	open := map[matching.Status]bool{matching.StatusPending: true, matching.StatusActive: true}
	for _, s := range allStatuses {
		assert.Equal(t, open[s], s.IsOpen(), s)
		assert.Equal(t, s.Allows(matching.ActionRespond), s.IsOpen(), s)
	}
}
