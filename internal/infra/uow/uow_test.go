//go:build unit

package uow

import (
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "lock request"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestTxBackOff(t *testing.T) {
	b := newTxBackOff()

	floor := 100 * time.Millisecond
	for i := 0; i < maxTxRetries; i++ {
		wait := b.NextBackOff()
		assert.GreaterOrEqual(t, wait, floor-floor/5)
		assert.LessOrEqual(t, wait, floor+floor/5)
		floor *= 2
	}
	assert.Equal(t, backoff.Stop, b.NextBackOff(), "gives up after the retry budget")
}
