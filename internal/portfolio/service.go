package portfolio

import (
	"context"
	"sync"
	"sync/atomic"

	"foliodash/internal/currency"
	"foliodash/internal/pricefeed"
)

// Feed supplies price snapshots and the advance mutation. The mock store
// satisfies it; a real market-data backend can be substituted without
// touching the valuation contract.
type Feed interface {
	Snapshot() pricefeed.PriceMap
	Advance(ctx context.Context) (pricefeed.PriceMap, error)
}

// Service combines the static holdings list with the price feed and owns
// the single refresh-in-flight flag. Refreshes go Idle → Refreshing →
// Idle; a failed advance returns to Idle with the last-known-good prices.
type Service struct {
	feed     Feed
	fmtr     *currency.Formatter
	holdings []Holding

	mu     sync.RWMutex
	prices pricefeed.PriceMap

	refreshing atomic.Bool
	onUpdate   func(pricefeed.PriceMap)
}

// NewService builds the service and populates its price state from the
// feed's current snapshot (no advance, no latency).
func NewService(feed Feed, holdings []Holding, fmtr *currency.Formatter) *Service {
	return &Service{
		feed:     feed,
		fmtr:     fmtr,
		holdings: holdings,
		prices:   feed.Snapshot(),
	}
}

// OnUpdate registers a hook invoked with the new map after each successful
// refresh. Must be set before the service starts handling requests.
func (s *Service) OnUpdate(fn func(pricefeed.PriceMap)) { s.onUpdate = fn }

// Refreshing reports whether a refresh is currently in flight.
func (s *Service) Refreshing() bool { return s.refreshing.Load() }

// Refresh advances the feed and swaps in the resulting snapshot.
// Overlapping calls are rejected with REFRESH_BUSY. The busy flag is
// cleared on every exit path; a failed advance keeps the previous prices.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.refreshing.CompareAndSwap(false, true) {
		return newError(CodeRefreshBusy, "a refresh is already in flight", nil)
	}
	defer s.refreshing.Store(false)

	next, err := s.feed.Advance(ctx)
	if err != nil {
		return newError(CodeFeedUnavailable, "price feed advance failed", err)
	}

	s.mu.Lock()
	s.prices = next
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(next.Clone())
	}
	return nil
}

// Prices returns the last-known-good snapshot the service values against.
func (s *Service) Prices() pricefeed.PriceMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prices.Clone()
}

// Holdings returns the session's holdings list.
func (s *Service) Holdings() []Holding { return s.holdings }

// Currency returns the display currency code.
func (s *Service) Currency() string { return s.fmtr.Code() }

// Rows derives the display rows from the current snapshot.
func (s *Service) Rows() []Row { return DeriveRows(s.holdings, s.Prices()) }

// Summary derives the portfolio aggregates from the current snapshot.
func (s *Service) Summary() Summary { return DeriveSummary(s.Rows()) }
