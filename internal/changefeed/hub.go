package changefeed

import "sync"

// subscriberBuffer is the channel capacity per subscriber. A slow consumer
// that falls this far behind starts dropping events; since every event means
// "refetch everything", a drop only delays convergence until the next event.
const subscriberBuffer = 16

// Hub fans change events out to per-table subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers interest in change events for the given table.
// The returned channel must be released with Unsubscribe.
func (h *Hub) Subscribe(table string) chan Event {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[table] == nil {
		h.subs[table] = make(map[chan Event]struct{})
	}
	h.subs[table][ch] = struct{}{}

	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (h *Hub) Unsubscribe(table string, ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[table]; ok {
		if _, ok := set[ch]; ok {
			delete(set, ch)
			close(ch)
		}
		if len(set) == 0 {
			delete(h.subs, table)
		}
	}
}

// Publish delivers the event to every subscriber of its table, exactly once
// per subscriber. Delivery is non-blocking.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[ev.Table] {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer is full; drop rather than block the feed.
		}
	}
}
