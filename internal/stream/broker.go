// Package stream pushes price updates to dashboard clients over websocket.
package stream

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"foliodash/internal/pricefeed"
)

const subscriberBufSize = 64

// PriceEvent is the frame sent to subscribers after a successful refresh.
type PriceEvent struct {
	Event  string             `json:"event"`
	Prices pricefeed.PriceMap `json:"prices"`
}

// Broker fans out price-update payloads to all subscribed clients.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[int64]chan []byte
	nextID      atomic.Int64
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subscribers: make(map[int64]chan []byte)}
}

// Subscribe registers a new client. The returned channel is buffered;
// slow consumers have events dropped.
func (b *Broker) Subscribe() (int64, <-chan []byte) {
	id := b.nextID.Add(1)
	ch := make(chan []byte, subscriberBufSize)
	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broker) Unsubscribe(id int64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish sends a payload to all subscribers without blocking.
func (b *Broker) Publish(payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- payload:
		default:
		}
	}
}

// PublishPrices broadcasts a price-update event for the given snapshot.
// Wired as the portfolio service's OnUpdate hook.
func (b *Broker) PublishPrices(prices pricefeed.PriceMap) {
	payload, err := json.Marshal(PriceEvent{Event: "prices", Prices: prices})
	if err != nil {
		slog.Error("marshal price event failed", "error", err)
		return
	}
	b.Publish(payload)
}

// ClientCount returns the number of active subscribers.
func (b *Broker) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
