package websocket

import (
	"encoding/json"
	"log"

	"github.com/mihaianh/wedding_backend/models"
)

// feedPayload is the payload of subscribe/unsubscribe messages.
type feedPayload struct {
	Location string `json:"location"`
}

// HandleIncomingEvent processes a message from a dashboard client.
// Dashboards only subscribe and unsubscribe; RSVP events flow the other
// way, pushed by the RSVP controller through BroadcastToLocation.
func HandleIncomingEvent(c *Client, raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("error unmarshaling message: %v", err)
		return
	}

	payloadBytes, err := json.Marshal(msg.Payload)
	if err != nil {
		log.Printf("error marshaling payload: %v", err)
		return
	}

	var payload feedPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		log.Printf("error unmarshaling payload: %v", err)
		return
	}

	location := models.NormalizeLocation(payload.Location)
	if location == "" {
		return
	}

	switch msg.Type {
	case "subscribe":
		c.subscribe(location)
	case "unsubscribe":
		c.unsubscribe(location)
	default:
		log.Printf("unknown message type: %s", msg.Type)
	}
}
