package changefeed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversOncePerSubscriber(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe("vet_bookings")
	b := hub.Subscribe("vet_bookings")
	other := hub.Subscribe("pets")

	ev := Event{Table: "vet_bookings", Type: EventUpdate}
	hub.Publish(ev)

	assert.Equal(t, ev, <-a)
	assert.Equal(t, ev, <-b)

	// Exactly once: no second copy queued.
	assert.Empty(t, a)
	assert.Empty(t, b)

	// Other tables see nothing.
	select {
	case got := <-other:
		t.Fatalf("unexpected event on pets channel: %+v", got)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("messages")
	hub.Unsubscribe("messages", ch)

	_, open := <-ch
	assert.False(t, open, "unsubscribed channel must be closed")

	// Publishing after unsubscribe is a no-op, not a panic.
	hub.Publish(Event{Table: "messages", Type: EventInsert})

	// Double unsubscribe is safe.
	hub.Unsubscribe("messages", ch)
}

func TestPublishDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("orders")
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(Event{Table: "orders", Type: EventInsert})
	}

	// The buffer holds at most subscriberBuffer events; extras were
	// dropped instead of blocking the publisher.
	require.Len(t, ch, subscriberBuffer)
}
