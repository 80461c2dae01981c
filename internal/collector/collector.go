package collector

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"QuoteJournal/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FetchError reports instruments whose latest session could not be obtained.
type FetchError struct {
	Symbols []string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", strings.Join(e.Symbols, ", "), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MockFetcher returns canned sessions for development and testing.
type MockFetcher struct {
	mu       sync.Mutex
	Sessions map[string]*model.Session
	Errors   map[string]error
	Calls    []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchLatestSession(_ context.Context, symbol string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, symbol)

	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	sess, ok := m.Sessions[symbol]
	if !ok || sess.Empty() {
		return nil, errors.Errorf("mock: no session for %s", symbol)
	}
	cp := *sess
	return &cp, nil
}

// Collector fetches the configured instruments and builds snapshots.
type Collector struct {
	Fetcher     Fetcher
	Instruments []model.Instrument
	log         *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, instruments []model.Instrument, log *zap.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Instruments: instruments, log: log}
}

// Collect returns one snapshot per instrument, in configuration order.
// A single missing instrument fails the whole collection.
func (c *Collector) Collect(ctx context.Context) ([]model.Snapshot, error) {
	snaps := make([]model.Snapshot, 0, len(c.Instruments))
	var (
		failed []string
		errs   error
	)

	fail := func(symbol string, err error) {
		c.log.Warn("instrument missing", zap.String("symbol", symbol), zap.Error(err))
		failed = append(failed, symbol)
		errs = multierr.Append(errs, err)
	}

	for _, inst := range c.Instruments {
		sess, err := c.Fetcher.FetchLatestSession(ctx, inst.Symbol)
		if err != nil {
			fail(inst.Symbol, errors.WithMessage(err, inst.Symbol))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		snap, err := model.NewSnapshot(inst, sess)
		if err != nil {
			fail(inst.Symbol, err)
			continue
		}
		c.log.Debug("session fetched",
			zap.String("symbol", inst.Symbol),
			zap.Time("session", sess.Time),
			zap.Stringer("close", snap.Current),
			zap.Int64("volume", snap.Volume),
		)
		snaps = append(snaps, snap)
	}

	if len(failed) > 0 {
		return nil, &FetchError{Symbols: failed, Err: errs}
	}
	return snaps, nil
}
