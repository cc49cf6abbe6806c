package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/mihaianh/wedding_backend/models"
)

// Hub maintains the set of connected organizer dashboards and fans out
// RSVP events to the clients subscribed to each location's feed.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Feed subscriptions (location -> clients)
	feeds map[models.Location]map[*Client]bool

	// Mutex for feeds map
	feedsMux sync.RWMutex

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		feeds:      make(map[models.Location]map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				// Remove client from all feeds
				h.feedsMux.Lock()
				for location, clients := range h.feeds {
					if _, ok := clients[client]; ok {
						delete(h.feeds[location], client)
						// Clean up empty feeds
						if len(h.feeds[location]) == 0 {
							delete(h.feeds, location)
						}
					}
				}
				h.feedsMux.Unlock()
			}
		}
	}
}

// subscribe adds a client to a location feed
func (h *Hub) subscribe(client *Client, location models.Location) {
	h.feedsMux.Lock()
	defer h.feedsMux.Unlock()

	if _, ok := h.feeds[location]; !ok {
		h.feeds[location] = make(map[*Client]bool)
	}
	h.feeds[location][client] = true
}

// unsubscribe removes a client from a location feed
func (h *Hub) unsubscribe(client *Client, location models.Location) {
	h.feedsMux.Lock()
	defer h.feedsMux.Unlock()

	if _, ok := h.feeds[location]; ok {
		delete(h.feeds[location], client)
		// Clean up empty feeds
		if len(h.feeds[location]) == 0 {
			delete(h.feeds, location)
		}
	}
}

// broadcastToFeed sends a message to all clients subscribed to a location
func (h *Hub) broadcastToFeed(location models.Location, message []byte) {
	h.feedsMux.RLock()
	defer h.feedsMux.RUnlock()

	if clients, ok := h.feeds[location]; ok {
		for client := range clients {
			select {
			case client.send <- message:
			default:
				close(client.send)
				delete(clients, client)
				delete(h.clients, client)
			}
		}
	}
}

// BroadcastToLocation sends an event to every dashboard watching a
// location's feed.
func BroadcastToLocation(location models.Location, msgType string, payload interface{}) {
	msg := Message{
		Type:    msgType,
		Payload: payload,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("error marshaling message: %v", err)
		return
	}

	hub.broadcastToFeed(location, msgBytes)
}

// Global hub instance
var hub *Hub

// InitHub initializes the global hub
func InitHub() {
	hub = NewHub()
	go hub.Run()
}
