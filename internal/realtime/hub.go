package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is a best-effort realtime notification. Delivery and ordering are
// not guaranteed relative to the REST writes that produced it; message
// persistence never depends on a live socket.
type Event struct {
	Type      string `json:"type"`
	UserID    uint   `json:"user_id"`
	FromID    uint   `json:"from_id"`
	Timestamp string `json:"timestamp"`
}

const (
	EventMatch   = "match"
	EventMessage = "message"
	EventUnmatch = "unmatch"
)

// eventChannel is the Redis Pub/Sub channel shared by all instances.
const eventChannel = "realtime:events"

// Notifier is the write side of the hub as seen by services.
type Notifier interface {
	Notify(ev Event)
}

// Hub tracks one WebSocket channel per connected user and fans events out
// across instances through Redis Pub/Sub. With no Redis configured it
// degrades to single-instance local delivery.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}

	rdb   *redis.Client
	local chan Event
	done  chan struct{}
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
		rdb:     rdb,
		local:   make(chan Event, 64),
		done:    make(chan struct{}),
	}
}

// Run consumes events until Stop is called. Call in a goroutine.
func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeLoop()
	}
	for {
		select {
		case ev := <-h.local:
			h.deliver(ev)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) subscribeLoop() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, eventChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				slog.Error("failed to decode realtime event", "error", err)
				continue
			}
			h.deliver(ev)
		case <-h.done:
			return
		}
	}
}

// Notify publishes an event. Never blocks the caller: with Redis the
// publish is fire-and-forget, without it the event is dropped if the
// local queue is full.
func (h *Hub) Notify(ev Event) {
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if h.rdb != nil {
		payload, err := json.Marshal(ev)
		if err != nil {
			slog.Error("failed to encode realtime event", "error", err)
			return
		}
		if err := h.rdb.Publish(context.Background(), eventChannel, payload).Err(); err != nil {
			slog.Error("failed to publish realtime event", "error", err, "type", ev.Type)
		}
		return
	}

	select {
	case h.local <- ev:
	default:
		slog.Warn("realtime queue full, dropping event", "type", ev.Type, "user_id", ev.UserID)
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.UserID]; ok {
		if _, present := set[c]; present {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
}

// Connected reports whether the user has at least one open socket on this
// instance.
func (h *Hub) Connected(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

func (h *Hub) deliver(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[ev.UserID] {
		select {
		case c.send <- ev:
		default:
			// Slow consumer: drop rather than stall the hub.
		}
	}
}
