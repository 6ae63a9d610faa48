//go:build unit

package commands_test

import (
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
	"github.com/Hunterii1/asl-market-sub001/tests/common/builder"
	"github.com/Hunterii1/asl-market-sub001/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *fakeuow.UoW
	clock    *clock.MockClock
	supplier *user.User
	visitor  *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		uow:   fakeuow.New(),
		clock: clock.NewMockClock(time.Now().UTC().Truncate(time.Second)),
	}
	f.supplier = f.addUser(t, builder.NewUserBuilder().WithEmail("supplier@example.com"))
	f.visitor = f.addVisitor(t)
	return f
}

func (f *fixture) addUser(t *testing.T, b *builder.UserBuilder) *user.User {
	t.Helper()
	u, err := b.BuildDomain()
	require.NoError(t, err)
	f.uow.AddUser(u)
	return u
}

func (f *fixture) addVisitor(t *testing.T) *user.User {
	t.Helper()
	id := uuid.New()
	return f.addUser(t, builder.NewUserBuilder().WithID(id).WithEmail(id.String()+"@example.com").AsVisitor())
}

// request seeds a request owned by the fixture supplier.
func (f *fixture) request(b *builder.MatchingRequestBuilder) *matching.Request {
	req := b.WithSupplier(f.supplier.ID()).BuildDomain()
	f.uow.AddRequest(req)
	return req
}

func (f *fixture) openRequest() *matching.Request {
	return f.request(builder.NewMatchingRequestBuilder().WithExpiresAt(f.clock.Now().Add(48 * time.Hour)))
}

func (f *fixture) overdueRequest() *matching.Request {
	return f.request(builder.NewMatchingRequestBuilder().WithExpiresAt(f.clock.Now().Add(-time.Minute)))
}

func (f *fixture) status(t *testing.T, id uuid.UUID) matching.Status {
	t.Helper()
	req, ok := f.uow.Request(id)
	require.True(t, ok, "request %s not stored", id)
	return req.Status()
}

func defaultPolicy() commands.Policy {
	return commands.Policy{
		VisitorCapacity: 5,
		IdempotencyTTL:  24 * time.Hour,
	}
}

func strPtr(s string) *string { return &s }
