package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is one tick of a periodic job.
type Task func(ctx context.Context) error

// Runner calls its task once on start and then every interval until stopped.
// A zero interval disables it.
type Runner struct {
	name     string
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(name string, interval time.Duration, task Task) *Runner {
	return &Runner{name: name, interval: interval, task: task}
}

func (r *Runner) Name() string { return r.name }

func (r *Runner) Enabled() bool { return r.interval > 0 && r.task != nil }

// Start launches the loop in the background. The ctx passed by fx start hooks
// is only valid during startup, so the loop gets its own context.
func (r *Runner) Start(context.Context) error {
	if !r.Enabled() {
		slog.Info("worker disabled", "worker", r.name)
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		r.run(ctx)
	}(r.done)

	slog.Info("worker started", "worker", r.name, "interval", r.interval.String())
	return nil
}

// Stop cancels the loop and waits for the running tick, bounded by ctx.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.Info("worker stopped", "worker", r.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) run(ctx context.Context) {
	r.tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("worker panicked", "worker", r.name, "panic", rec)
		}
	}()

	if err := r.task(ctx); err != nil && ctx.Err() == nil {
		slog.Error("worker tick failed", "worker", r.name, "error", err.Error())
	}
}
