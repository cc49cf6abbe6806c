package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mihaianh/wedding_backend/models"
)

func TestSendSuccess(t *testing.T) {
	var received Request
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "s3cret")
	result, err := client.Send(context.Background(), Request{
		Name:      "Andrei Popescu",
		Email:     "a@x.com",
		Attending: true,
		Location:  models.LocationRomania,
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if !result.Success {
		t.Error("expected success")
	}
	if result.DispatchID == "" {
		t.Error("expected a dispatch ID")
	}
	if received.Email != "a@x.com" || received.Location != models.LocationRomania {
		t.Errorf("service received %+v", received)
	}
	if gotAuth != "Bearer s3cret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestSendServiceReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": false})
	}))
	defer server.Close()

	result, err := NewClientWithURL(server.URL, "").Send(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Success {
		t.Error("expected failure reported")
	}
}

func TestSendServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]bool{"success": false})
	}))
	defer server.Close()

	result, err := NewClientWithURL(server.URL, "").Send(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Success {
		t.Error("5xx must not count as success")
	}
}

func TestSendUnreachableService(t *testing.T) {
	// Closed port: the transport error surfaces but a result with a
	// dispatch ID still comes back for logging.
	result, err := NewClientWithURL("http://127.0.0.1:1/send", "").Send(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if result.Success {
		t.Error("unreachable service must not report success")
	}
	if result.DispatchID == "" {
		t.Error("expected a dispatch ID")
	}
}
