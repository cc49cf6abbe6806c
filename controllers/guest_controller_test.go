package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/mihaianh/wedding_backend/models"
)

func TestVerifyInviteMissingCode(t *testing.T) {
	backend := newTestBackend()

	w, _ := backend.post(t, "/api/invites/verify", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	// Whitespace passes binding but fails normalization.
	w, _ = backend.post(t, "/api/invites/verify", map[string]interface{}{"invite_id": "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("whitespace code status = %d, want 400", w.Code)
	}
}

func TestVerifyInviteUnknownCode(t *testing.T) {
	backend := newTestBackend()

	w, body := backend.post(t, "/api/invites/verify", map[string]interface{}{"invite_id": "NOSUCH"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["error"] != "invalid invite code" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestVerifyInviteReturnsGuestView(t *testing.T) {
	backend := newTestBackend()
	self := backend.addGuest("ABC123", "Andrei", "Popescu", models.LocationRomania, models.LocationVietnam)
	member := backend.addGuest("DEF456", "Elena", "Popescu", models.LocationRomania)
	self.GroupMembers = []*models.Guest{member}

	backend.repos[models.LocationRomania].Upsert(context.Background(), "ABC123", models.ResponseFields{Attending: true})

	w, body := backend.post(t, "/api/invites/verify", map[string]interface{}{"invite_id": "abc123"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}

	if body["invite_id"] != "ABC123" {
		t.Errorf("invite_id = %v", body["invite_id"])
	}
	if body["full_name"] != "Andrei Popescu" {
		t.Errorf("full_name = %v", body["full_name"])
	}

	locations := body["location"].([]interface{})
	if len(locations) != 2 {
		t.Errorf("location = %v", locations)
	}

	responded := body["rsvp"].([]interface{})
	if len(responded) != 1 || responded[0] != "ROMANIA" {
		t.Errorf("rsvp = %v", responded)
	}

	groupMembers := body["group_members"].([]interface{})
	if len(groupMembers) != 1 {
		t.Fatalf("group_members = %v", groupMembers)
	}
}
