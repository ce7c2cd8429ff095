package broadcast

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is the envelope pushed to every connected subscriber.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans events out to the currently connected websocket clients.
// Delivery is fire-and-forget: late subscribers see nothing from before they
// connected, and a client whose send buffer is full misses the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

// Publish sends the event to all connected clients.
func (h *Hub) Publish(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("broadcast: failed to marshal %q event: %v", event.Event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// client is not keeping up; skip it
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}
