package scheduler

import (
	"context"
	"time"

	"QuoteJournal/internal/collector"
	"QuoteJournal/internal/recorder"
	"QuoteJournal/internal/report"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// State is the scheduler's position in its run cycle.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule parses a cron expression, seconds field optional.
func ParseSchedule(expr string) (cron.Schedule, error) {
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "parse schedule %q", expr)
	}
	return sched, nil
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithRunOnStart toggles the eager run performed by Run.
func WithRunOnStart(v bool) Option {
	return func(s *Scheduler) { s.runOnStart = v }
}

// Scheduler polls the clock and runs the fetch, format and append cycle
// at most once per calendar day. It is not safe for concurrent use.
type Scheduler struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Schedule  cron.Schedule
	Interval  time.Duration

	now        func() time.Time
	log        *zap.Logger
	runOnStart bool

	next    time.Time
	lastRun time.Time
	state   State
}

// NewScheduler creates a Scheduler armed for the first slot after the current time.
func NewScheduler(col *collector.Collector, rec recorder.Recorder, sched cron.Schedule, interval time.Duration, log *zap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		Collector:  col,
		Recorder:   rec,
		Schedule:   sched,
		Interval:   interval,
		now:        time.Now,
		log:        log,
		runOnStart: true,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.next = s.Schedule.Next(s.now())
	return s
}

// State returns the current cycle state.
func (s *Scheduler) State() State { return s.state }

// Next returns the time of the next scheduled slot.
func (s *Scheduler) Next() time.Time { return s.next }

// Run performs the startup run, then polls every Interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler started",
		zap.Duration("interval", s.Interval),
		zap.Time("next_run", s.next),
	)

	if s.runOnStart {
		s.log.Info("running startup report")
		_ = s.RunNow(ctx)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs the cycle when the armed slot has been reached and nothing ran
// from the schedule yet today. It reports whether a run happened.
func (s *Scheduler) Tick(ctx context.Context) bool {
	now := s.now()
	if now.Before(s.next) {
		return false
	}
	s.next = s.Schedule.Next(now)

	if !s.lastRun.IsZero() && sameDay(s.lastRun, now) {
		s.log.Debug("already ran today, skipping slot", zap.Time("next_run", s.next))
		return false
	}
	s.lastRun = now

	_ = s.RunNow(ctx)
	s.log.Info("next report scheduled", zap.Time("next_run", s.next))
	return true
}

// RunNow executes one fetch, format and append attempt.
func (s *Scheduler) RunNow(ctx context.Context) error {
	s.state = StateRunning
	defer func() { s.state = StateIdle }()

	start := s.now()
	s.log.Info("running market report task", zap.Time("at", start))

	snaps, err := s.Collector.Collect(ctx)
	if err != nil {
		s.log.Error("could not fetch market data", zap.Error(err))
		return err
	}

	text := report.Format(start, snaps)
	if err := s.Recorder.Append(text); err != nil {
		s.log.Error("could not save report", zap.Error(err))
		return err
	}

	s.log.Info("report saved", zap.Int("instruments", len(snaps)))
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
