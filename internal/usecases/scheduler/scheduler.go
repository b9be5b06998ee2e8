package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"go-folder-cleanup/internal/domain/models"
	"go-folder-cleanup/internal/usecases/cleanup"

	"go.uber.org/zap"
)

// State is the scheduler's lifecycle position.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateSleeping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSleeping:
		return "sleeping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ReportSink receives each cycle's report for display. Implemented by
// internal/interfaces/console.
type ReportSink interface {
	Summary(report *models.DeletionReport)
}

// Scheduler runs the cleanup use case on a fixed interval until its
// context is cancelled. Cancellation is observed between cycles and
// during the sleep (within one tick), never mid-cycle: a batch that
// has started always runs to completion.
type Scheduler struct {
	usecase  cleanup.CleanupUseCase
	interval time.Duration
	tick     time.Duration
	sink     ReportSink
	logger   *zap.Logger
	state    atomic.Int32
}

func New(usecase cleanup.CleanupUseCase, interval, tick time.Duration, sink ReportSink, logger *zap.Logger) *Scheduler {
	if tick <= 0 || tick > interval {
		tick = interval
	}
	return &Scheduler{
		usecase:  usecase,
		interval: interval,
		tick:     tick,
		sink:     sink,
		logger:   logger,
	}
}

// State returns the scheduler's current lifecycle position. Safe to
// call from any goroutine.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Run loops Running -> Sleeping until ctx is cancelled, then returns
// with the scheduler in the terminal Stopped state.
func (s *Scheduler) Run(ctx context.Context) {
	defer s.state.Store(int32(StateStopped))

	s.logger.Info("Scheduler started",
		zap.Duration("interval", s.interval))

	for {
		if ctx.Err() != nil {
			s.logger.Info("Scheduler stopping")
			return
		}

		s.state.Store(int32(StateRunning))
		s.runCycle(ctx)

		s.state.Store(int32(StateSleeping))
		if !s.sleep(ctx) {
			s.logger.Info("Scheduler stopping")
			return
		}
	}
}

// runCycle executes one cleanup cycle. A failed cycle is logged and
// the loop proceeds to the next interval; the daemon never silently
// stops after a partial failure.
func (s *Scheduler) runCycle(ctx context.Context) {
	report, err := s.usecase.Cleanup(ctx)
	if err != nil {
		s.logger.Error("Cleanup cycle failed", zap.Error(err))
		return
	}
	if s.sink != nil {
		s.sink.Summary(report)
	}
}

// sleep waits for the configured interval, checking for cancellation
// once per tick. Returns false if ctx was cancelled.
func (s *Scheduler) sleep(ctx context.Context) bool {
	deadline := time.Now().Add(s.interval)
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case now := <-ticker.C:
			if !now.Before(deadline) {
				return true
			}
		}
	}
}
