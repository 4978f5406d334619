package benchmark

import (
	"time"

	"github.com/benbjohnson/clock"
	pkgerrors "github.com/pkg/errors"
)

// Runner defines the interface for timing workloads.
type Runner interface {
	Run(name string, work Workload) (Result, error)
}

// Observer is notified after every measured invocation, outside the timed
// interval. err is a *WorkloadFailure when the workload failed.
type Observer interface {
	Observe(name string, d time.Duration, err error)
}

// ClockRunner implements Runner by bracketing each workload with readings
// from a monotonic clock.
type ClockRunner struct {
	clock    clock.Clock
	observer Observer
}

// Option configures a ClockRunner.
type Option func(*ClockRunner)

// WithClock replaces the default system clock.
func WithClock(c clock.Clock) Option {
	return func(r *ClockRunner) {
		r.clock = c
	}
}

// WithObserver registers an observer for completed invocations.
func WithObserver(o Observer) Option {
	return func(r *ClockRunner) {
		r.observer = o
	}
}

func NewClockRunner(opts ...Option) *ClockRunner {
	r := &ClockRunner{clock: clock.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run invokes work exactly once and returns how long it took.
// A workload that returns an error or panics yields a *WorkloadFailure and
// no Result.
func (r *ClockRunner) Run(name string, work Workload) (Result, error) {
	if work == nil {
		failure := &WorkloadFailure{Name: name, Cause: ErrNilWorkload}
		r.notify(name, 0, failure)
		return Result{}, failure
	}

	start := r.clock.Now()
	err := invoke(work)
	elapsed := r.clock.Since(start)

	if err != nil {
		failure := &WorkloadFailure{Name: name, Cause: err}
		r.notify(name, elapsed, failure)
		return Result{}, failure
	}

	// A monotonic reading never goes backwards, but an injected clock might.
	if elapsed < 0 {
		elapsed = 0
	}
	r.notify(name, elapsed, nil)
	return Result{Name: name, Duration: elapsed}, nil
}

func (r *ClockRunner) notify(name string, d time.Duration, err error) {
	if r.observer != nil {
		r.observer.Observe(name, d, err)
	}
}

func invoke(work Workload) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = pkgerrors.Wrap(perr, "panic")
				return
			}
			err = pkgerrors.Errorf("panic: %v", p)
		}
	}()
	return work()
}
