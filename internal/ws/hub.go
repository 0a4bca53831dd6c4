package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewEvent marshals payload into an Event of the given type.
func NewEvent(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: raw}, nil
}

// sessionEvent routes an event to the pages of one session
type sessionEvent struct {
	SessionID uuid.UUID
	Event     Event
}

// Hub maintains the set of open pages per session and broadcasts to them
type Hub struct {
	// Registered clients by session ID
	rooms map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *sessionEvent

	// Closed when Run returns
	done     chan struct{}
	doneOnce sync.Once

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *sessionEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run is the hub's main loop. It returns when ctx is cancelled, after
// closing every client's send channel.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.doneOnce.Do(func() { close(h.done) })
			h.closeAll()
			return nil

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.sessionID] == nil {
				h.rooms[client.sessionID] = make(map[*Client]bool)
			}
			h.rooms[client.sessionID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			message, err := json.Marshal(event.Event)
			if err != nil {
				log.Printf("ERROR: marshal ws event: %v", err)
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[event.SessionID] {
				select {
				case client.send <- message:
				default:
					// Slow page, drop it; it reconnects on its own.
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.rooms[client.sessionID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.sessionID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, clients := range h.rooms {
		for client := range clients {
			close(client.send)
		}
		delete(h.rooms, id)
	}
}

// join registers a client. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave unregisters a client. After the hub has stopped, closeAll has already
// dropped every client, so there is nothing to do.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastToSession queues an event for every page open on a session.
// The event is dropped if the queue is full.
func (h *Hub) BroadcastToSession(sessionID uuid.UUID, event Event) {
	select {
	case h.broadcast <- &sessionEvent{SessionID: sessionID, Event: event}:
	default:
		log.Printf("ERROR: ws broadcast queue full, dropping %s", event.Type)
	}
}

// Clients reports how many pages are connected for a session.
func (h *Hub) Clients(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionID])
}
