package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID uint) *Client {
	// No socket needed; deliver only touches the send channel.
	return NewClient(userID, nil)
}

func waitForEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case ev := <-c.send:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_DeliversToRegisteredUser(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	client := newTestClient(7)
	hub.Register(client)

	hub.Notify(Event{Type: EventMatch, UserID: 7, FromID: 3})

	ev := waitForEvent(t, client)
	assert.Equal(t, EventMatch, ev.Type)
	assert.Equal(t, uint(3), ev.FromID)
	assert.NotEmpty(t, ev.Timestamp)
}

func TestHub_IgnoresUnregisteredUser(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	client := newTestClient(7)
	hub.Register(client)

	hub.Notify(Event{Type: EventMessage, UserID: 99})

	select {
	case ev := <-client.send:
		t.Fatalf("unexpected event delivered: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_MultipleConnectionsPerUser(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	first := newTestClient(7)
	second := newTestClient(7)
	hub.Register(first)
	hub.Register(second)

	hub.Notify(Event{Type: EventUnmatch, UserID: 7})

	assert.Equal(t, EventUnmatch, waitForEvent(t, first).Type)
	assert.Equal(t, EventUnmatch, waitForEvent(t, second).Type)
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil)

	client := newTestClient(7)
	hub.Register(client)
	require.True(t, hub.Connected(7))

	hub.Unregister(client)
	assert.False(t, hub.Connected(7))

	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub(nil)

	client := newTestClient(7)
	hub.Register(client)
	hub.Unregister(client)

	assert.NotPanics(t, func() { hub.Unregister(client) })
}

func TestHub_SlowConsumerDoesNotBlockDelivery(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	slow := newTestClient(7)
	hub.Register(slow)

	// Overrun the per-client buffer; extra events must be dropped, not
	// wedge the hub loop.
	for i := 0; i < cap(slow.send)+10; i++ {
		hub.Notify(Event{Type: EventMessage, UserID: 7})
	}

	fast := newTestClient(8)
	hub.Register(fast)
	hub.Notify(Event{Type: EventMatch, UserID: 8})

	assert.Equal(t, EventMatch, waitForEvent(t, fast).Type)
}
