package pricefeed

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Per-step walk bounds: price drifts by a uniform percentage within
	// ±driftBoundPct, the 24h change moves by a uniform delta within
	// ±changeBound absolute percentage points.
	driftBoundPct = 1.2
	changeBound   = 0.6

	defaultLatency = 200 * time.Millisecond
)

// Store owns the symbol-to-quote mapping and mutates it only through the
// bounded random walk in Advance. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	prices  PriceMap
	rng     *rand.Rand
	latency time.Duration
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithRand injects the random source so walks can be made deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithLatency overrides the simulated round-trip delay of Advance.
// Zero disables the delay entirely.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// NewStore builds a store over a copy of seed.
func NewStore(seed PriceMap, opts ...Option) *Store {
	s := &Store{
		prices:  seed.Clone(),
		latency: defaultLatency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Snapshot returns a copy of the current price map. Never fails.
func (s *Store) Snapshot() PriceMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices.Clone()
}

// Advance replaces every quote with one random-walk step and returns a
// copy of the new map. The map is swapped wholesale: no symbols are added
// or dropped. A simulated round-trip latency elapses before the swap; the
// only failure mode is context cancellation, which leaves the current map
// untouched.
func (s *Store) Advance(ctx context.Context) (PriceMap, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(PriceMap, len(s.prices))
	for sym, pt := range s.prices {
		next[sym] = s.step(pt)
	}
	s.prices = next
	return next.Clone(), nil
}

// step derives the successor quote for one symbol. Both results are
// rounded half-up to 2 decimal places.
func (s *Store) step(pt PricePoint) PricePoint {
	drift := s.uniform(-driftBoundPct, driftBoundPct)
	delta := s.uniform(-changeBound, changeBound)
	return PricePoint{
		Symbol:    pt.Symbol,
		Price:     pt.Price.Mul(decimal.NewFromFloat(1 + drift/100)).Round(2),
		Change24h: pt.Change24h.Add(decimal.NewFromFloat(delta)).Round(2),
	}
}

func (s *Store) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
