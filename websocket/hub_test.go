package websocket

import (
	"testing"

	"github.com/mihaianh/wedding_backend/models"
)

func newHubClient(h *Hub) *Client {
	return &Client{
		hub:   h,
		send:  make(chan []byte, 1),
		feeds: make(map[models.Location]bool),
	}
}

func TestHubBroadcastsOnlyToSubscribedFeed(t *testing.T) {
	h := NewHub()
	romania := newHubClient(h)
	vietnam := newHubClient(h)

	romania.subscribe(models.LocationRomania)
	vietnam.subscribe(models.LocationVietnam)

	h.broadcastToFeed(models.LocationRomania, []byte(`{"type":"rsvp"}`))

	select {
	case msg := <-romania.send:
		if string(msg) != `{"type":"rsvp"}` {
			t.Errorf("message = %s", msg)
		}
	default:
		t.Error("subscribed client received nothing")
	}

	select {
	case msg := <-vietnam.send:
		t.Errorf("unsubscribed client received %s", msg)
	default:
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	client := newHubClient(h)

	client.subscribe(models.LocationRomania)
	if !client.subscribed(models.LocationRomania) {
		t.Fatal("expected subscription")
	}

	client.unsubscribe(models.LocationRomania)
	h.broadcastToFeed(models.LocationRomania, []byte("x"))

	select {
	case <-client.send:
		t.Error("unsubscribed client still receives")
	default:
	}
}
