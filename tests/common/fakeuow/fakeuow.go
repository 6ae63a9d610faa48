//go:build unit

// Package fakeuow is an in-memory shared.UnitOfWork for command tests.
// Transactions are serialized by one mutex, which gives the same outcome as
// the row locks the postgres implementation takes, and a failed transaction
// restores the state it started from.
package fakeuow

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Job struct {
	shared.NotificationJob
	Status  string
	LastErr string
}

type ExposureKey struct {
	RequestID uuid.UUID
	VisitorID uuid.UUID
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	requests    map[uuid.UUID]matching.Request
	responses   []*response.Response
	ratings     []*rating.Rating
	users       map[uuid.UUID]*user.User
	lastLogins  map[uuid.UUID]time.Time
	exposures   map[ExposureKey]shared.ExposureSource
	idempotency map[idemKey]shared.IdempotencyRecord
	jobs        []*Job
}

func (s *state) clone() *state {
	c := &state{
		requests:    make(map[uuid.UUID]matching.Request, len(s.requests)),
		responses:   slices.Clone(s.responses),
		ratings:     slices.Clone(s.ratings),
		users:       make(map[uuid.UUID]*user.User, len(s.users)),
		lastLogins:  make(map[uuid.UUID]time.Time, len(s.lastLogins)),
		exposures:   make(map[ExposureKey]shared.ExposureSource, len(s.exposures)),
		idempotency: make(map[idemKey]shared.IdempotencyRecord, len(s.idempotency)),
		jobs:        make([]*Job, len(s.jobs)),
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.lastLogins {
		c.lastLogins[k] = v
	}
	for k, v := range s.exposures {
		c.exposures[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	for i, j := range s.jobs {
		cp := *j
		c.jobs[i] = &cp
	}
	return c
}

// UoW implements shared.UnitOfWork over maps.
type UoW struct {
	mu sync.Mutex
	st *state

	// Commits counts successful transactions.
	Commits int
	// FailNotificationInsert makes CreateJob fail, to check rollbacks.
	FailNotificationInsert error
}

func New() *UoW {
	return &UoW{st: (&state{}).clone()}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := u.st.clone()
	if err := fn(ctx, &fakeTx{u: u}); err != nil {
		u.st = snapshot
		return err
	}
	u.Commits++
	return nil
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &reads{u: u}
}

// Seeding and inspection helpers. They take the lock themselves and must not
// be called from inside Within.

func (u *UoW) AddUser(usr *user.User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.users[usr.ID()] = usr
}

func (u *UoW) AddRequest(req *matching.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.requests[req.ID()] = *req
}

func (u *UoW) AddResponse(resp *response.Response) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.responses = append(u.st.responses, resp)
}

func (u *UoW) Request(id uuid.UUID) (*matching.Request, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.st.requests[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (u *UoW) Responses(requestID uuid.UUID) []*response.Response {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*response.Response
	for _, r := range u.st.responses {
		if r.RequestID() == requestID {
			out = append(out, r)
		}
	}
	return out
}

func (u *UoW) Ratings(requestID uuid.UUID) []*rating.Rating {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*rating.Rating
	for _, r := range u.st.ratings {
		if r.RequestID() == requestID {
			out = append(out, r)
		}
	}
	return out
}

// Jobs returns a copy of the outbox, optionally filtered by topic.
func (u *UoW) Jobs(topic string) []Job {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []Job
	for _, j := range u.st.jobs {
		if topic == "" || j.Topic == topic {
			out = append(out, *j)
		}
	}
	return out
}

func (u *UoW) Exposure(requestID, visitorID uuid.UUID) (shared.ExposureSource, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.exposures[ExposureKey{requestID, visitorID}]
	return s, ok
}

func (u *UoW) IdempotencyRecord(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.st.idempotency[idemKey{key, userID}]
	return r, ok
}

func (u *UoW) PutIdempotencyRecord(rec shared.IdempotencyRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.idempotency[idemKey{rec.Key, rec.UserID}] = rec
}

func (u *UoW) LastLogin(userID uuid.UUID) (time.Time, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	t, ok := u.st.lastLogins[userID]
	return t, ok
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func uniqueViolation(constraint string) error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

type reads struct{ u *UoW }

func (r *reads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, usr := range r.u.st.users {
		if usr.Email().Value() == email && usr.IsActive() {
			return usr, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *reads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	usr, ok := r.u.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return usr, nil
}

type fakeTx struct{ u *UoW }

func (t *fakeTx) Requests() shared.MatchingRequestRepository   { return &requestRepo{t.u} }
func (t *fakeTx) Responses() shared.ResponseRepository         { return &responseRepo{t.u} }
func (t *fakeTx) Ratings() shared.RatingRepository             { return &ratingRepo{t.u} }
func (t *fakeTx) Exposures() shared.ExposureRepository         { return &exposureRepo{t.u} }
func (t *fakeTx) Users() shared.UserRepository                 { return &userRepo{t.u} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository    { return &idempotencyRepo{t.u} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &notificationRepo{t.u} }
func (t *fakeTx) DB() sqlc.DBTX                                { return nil }

type requestRepo struct{ u *UoW }

func (r *requestRepo) Create(_ context.Context, _ sqlc.DBTX, req *matching.Request) (uuid.UUID, error) {
	r.u.st.requests[req.ID()] = *req
	return req.ID(), nil
}

func (r *requestRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*matching.Request, error) {
	req, ok := r.u.st.requests[id]
	if !ok {
		return nil, notFound("matching request not found")
	}
	return &req, nil
}

func (r *requestRepo) Save(_ context.Context, _ sqlc.DBTX, req *matching.Request) error {
	if _, ok := r.u.st.requests[req.ID()]; !ok {
		return notFound("matching request not found")
	}
	r.u.st.requests[req.ID()] = *req
	return nil
}

func (r *requestRepo) CountActiveAccepted(_ context.Context, _ sqlc.DBTX, visitorID uuid.UUID, now time.Time) (int, error) {
	n := 0
	for _, req := range r.u.st.requests {
		if req.Status() == matching.StatusAccepted && req.IsAcceptedVisitor(visitorID) && req.ExpiresAt().After(now) {
			n++
		}
	}
	return n, nil
}

func (r *requestRepo) ExpireOverdue(_ context.Context, _ sqlc.DBTX, now time.Time, batchSize int) ([]shared.ExpiredRequest, error) {
	var due []matching.Request
	for _, req := range r.u.st.requests {
		if !req.Status().IsTerminal() && !now.Before(req.ExpiresAt()) {
			due = append(due, req)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ExpiresAt().Before(due[j].ExpiresAt()) })
	if len(due) > batchSize {
		due = due[:batchSize]
	}

	out := make([]shared.ExpiredRequest, 0, len(due))
	for _, req := range due {
		req.ExpireIfDue(now)
		r.u.st.requests[req.ID()] = req
		out = append(out, shared.ExpiredRequest{
			ID:                req.ID(),
			SupplierID:        req.SupplierID(),
			AcceptedVisitorID: req.AcceptedVisitorID(),
		})
	}
	return out, nil
}

type responseRepo struct{ u *UoW }

func (r *responseRepo) Create(_ context.Context, _ sqlc.DBTX, resp *response.Response) (uuid.UUID, error) {
	if resp.IsAcceptance() {
		for _, existing := range r.u.st.responses {
			if existing.RequestID() == resp.RequestID() && existing.IsAcceptance() {
				return uuid.Nil, uniqueViolation(repository.ConstraintOneAcceptance)
			}
		}
	}
	r.u.st.responses = append(r.u.st.responses, resp)
	return resp.ID(), nil
}

func (r *responseRepo) FindByVisitor(_ context.Context, _ sqlc.DBTX, requestID, visitorID uuid.UUID) (*response.Response, error) {
	var latest *response.Response
	for _, resp := range r.u.st.responses {
		if resp.RequestID() == requestID && resp.VisitorID() == visitorID {
			latest = resp
		}
	}
	return latest, nil
}

type ratingRepo struct{ u *UoW }

func (r *ratingRepo) Create(_ context.Context, _ sqlc.DBTX, entry *rating.Rating) (uuid.UUID, error) {
	for _, existing := range r.u.st.ratings {
		if existing.RequestID() == entry.RequestID() && existing.RaterID() == entry.RaterID() {
			return uuid.Nil, uniqueViolation("matching_ratings_request_rater_uniq")
		}
	}
	r.u.st.ratings = append(r.u.st.ratings, entry)
	return entry.ID(), nil
}

func (r *ratingRepo) FindByRater(_ context.Context, _ sqlc.DBTX, requestID, raterID uuid.UUID) (*rating.Rating, error) {
	for _, existing := range r.u.st.ratings {
		if existing.RequestID() == requestID && existing.RaterID() == raterID {
			return existing, nil
		}
	}
	return nil, nil
}

type exposureRepo struct{ u *UoW }

// Record keeps the first source, like the ON CONFLICT DO NOTHING insert.
func (r *exposureRepo) Record(_ context.Context, _ sqlc.DBTX, requestID, visitorID uuid.UUID, source shared.ExposureSource, _ time.Time) error {
	k := ExposureKey{requestID, visitorID}
	if _, ok := r.u.st.exposures[k]; !ok {
		r.u.st.exposures[k] = source
	}
	return nil
}

type userRepo struct{ u *UoW }

func (r *userRepo) LockForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	usr, ok := r.u.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return usr, nil
}

func (r *userRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	if _, ok := r.u.st.users[userID]; !ok {
		return notFound("user not found")
	}
	r.u.st.lastLogins[userID] = at
	return nil
}

type idempotencyRepo struct{ u *UoW }

func (r *idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, rec shared.IdempotencyRecord, _ time.Time) (bool, error) {
	k := idemKey{rec.Key, rec.UserID}
	if _, ok := r.u.st.idempotency[k]; ok {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	rec.ResultID = nil
	r.u.st.idempotency[k] = rec
	return true, nil
}

func (r *idempotencyRepo) Get(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.u.st.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

func (r *idempotencyRepo) ClaimExpired(_ context.Context, _ sqlc.DBTX, rec shared.IdempotencyRecord, now time.Time) (bool, error) {
	k := idemKey{rec.Key, rec.UserID}
	existing, ok := r.u.st.idempotency[k]
	if !ok || !existing.ExpiresAt.Before(now) {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	rec.ResultID = nil
	r.u.st.idempotency[k] = rec
	return true, nil
}

func (r *idempotencyRepo) Complete(_ context.Context, _ sqlc.DBTX, key, userID, resultID uuid.UUID, _ time.Time) error {
	k := idemKey{key, userID}
	rec, ok := r.u.st.idempotency[k]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultID = &resultID
	r.u.st.idempotency[k] = rec
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for k, rec := range r.u.st.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(r.u.st.idempotency, k)
			n++
		}
	}
	return n, nil
}

type notificationRepo struct{ u *UoW }

func (r *notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if r.u.FailNotificationInsert != nil {
		return r.u.FailNotificationInsert
	}
	r.u.st.jobs = append(r.u.st.jobs, &Job{
		NotificationJob: shared.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: payload,
			RunAt:   runAt,
		},
		Status: "queued",
	})
	return nil
}

func (r *notificationRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for _, j := range r.u.st.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == "queued" && !j.RunAt.After(now) {
			out = append(out, j.NotificationJob)
		}
	}
	return out, nil
}

func (r *notificationRepo) find(id uuid.UUID) (*Job, error) {
	for _, j := range r.u.st.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, notFound("notification job not found")
}

func (r *notificationRepo) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ time.Time) error {
	j, err := r.find(id)
	if err != nil {
		return err
	}
	j.Status, j.LastErr = "sent", ""
	j.Attempts++
	return nil
}

func (r *notificationRepo) Reschedule(_ context.Context, _ sqlc.DBTX, id uuid.UUID, runAt time.Time, lastErr string, _ time.Time) error {
	j, err := r.find(id)
	if err != nil {
		return err
	}
	j.RunAt, j.LastErr = runAt, lastErr
	j.Attempts++
	return nil
}

func (r *notificationRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, _ time.Time) error {
	j, err := r.find(id)
	if err != nil {
		return err
	}
	j.Status, j.LastErr = "failed", lastErr
	j.Attempts++
	return nil
}
