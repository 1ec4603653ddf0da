// Package sampler runs every registered source reader once per tick and
// assembles their readings into a metrics.Snapshot.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	rmerrors "github.com/rileyhilliard/rmon/internal/errors"
	"github.com/rileyhilliard/rmon/internal/logger"
	"github.com/rileyhilliard/rmon/internal/metrics"
)

// DefaultTimeout bounds a single reader within one tick.
const DefaultTimeout = 3 * time.Second

// ErrTimedOut is the reason attached to a reader that missed its deadline.
var ErrTimedOut = errors.New("timed out")

// probe is one registered reader. run performs the read and returns the
// assignment to apply once every probe has finished.
type probe struct {
	name string
	run  func(ctx context.Context) func(*metrics.Snapshot)
	fail func(err error) func(*metrics.Snapshot)
}

// Sampler gathers one Snapshot per call to Collect.
type Sampler struct {
	timeout time.Duration
	log     logger.Logger
	now     func() time.Time
	probes  []probe
}

// New creates a sampler that gives each reader at most timeout.
// A zero timeout uses DefaultTimeout; a nil log discards output.
func New(timeout time.Duration, log logger.Logger) *Sampler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{timeout: timeout, log: log, now: time.Now}
}

// SetClock replaces the clock used to stamp snapshots.
func (s *Sampler) SetClock(now func() time.Time) {
	s.now = now
}

// Register adds a reader whose result is stored through assign. It must be
// called before the first Collect.
func Register[T any](s *Sampler, name string, r metrics.Reader[T], assign func(*metrics.Snapshot, metrics.Reading[T])) {
	s.probes = append(s.probes, probe{
		name: name,
		run: func(ctx context.Context) func(*metrics.Snapshot) {
			reading := r(ctx)
			return func(snap *metrics.Snapshot) { assign(snap, reading) }
		},
		fail: func(err error) func(*metrics.Snapshot) {
			reading := metrics.Unavailable[T](err)
			return func(snap *metrics.Snapshot) { assign(snap, reading) }
		},
	})
}

// Names returns the registered reader names in registration order.
func (s *Sampler) Names() []string {
	names := make([]string, len(s.probes))
	for i, p := range s.probes {
		names[i] = p.name
	}
	return names
}

// Collect runs every reader exactly once, concurrently, and returns the
// snapshot after all of them have finished or timed out.
func (s *Sampler) Collect(ctx context.Context) metrics.Snapshot {
	results := make([]func(*metrics.Snapshot), len(s.probes))
	var wg sync.WaitGroup

	for i, p := range s.probes {
		wg.Add(1)
		go func(i int, p probe) {
			defer wg.Done()
			results[i] = s.runProbe(ctx, p)
		}(i, p)
	}
	wg.Wait()

	snap := metrics.Snapshot{Taken: s.now()}
	for _, apply := range results {
		apply(&snap)
	}
	return snap
}

// runProbe runs p under its own deadline. A reader that panics or ignores
// its context is reported unavailable; a late result is discarded.
func (s *Sampler) runProbe(ctx context.Context, p probe) func(*metrics.Snapshot) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan func(*metrics.Snapshot), 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("reader %s panicked: %v", p.name, r)
				done <- p.fail(rmerrors.Wrap(fmt.Errorf("panic: %v", r), p.name+" reader panicked"))
			}
		}()
		done <- p.run(ctx)
	}()

	select {
	case apply := <-done:
		return apply
	case <-ctx.Done():
		s.log.Debug("reader %s: %v", p.name, ctx.Err())
		return p.fail(fmt.Errorf("%s: %w", p.name, ErrTimedOut))
	}
}
