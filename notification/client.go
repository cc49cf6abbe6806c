package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mihaianh/wedding_backend/models"
)

// Request is the payload sent to the external notification service.
type Request struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Attending bool            `json:"attending"`
	Location  models.Location `json:"location"`
}

// Result reports one dispatch attempt. Failure here is a secondary
// status: it never invalidates an already-recorded response.
type Result struct {
	DispatchID string `json:"dispatch_id"`
	Success    bool   `json:"success"`
}

// Client talks to the external notification service over HTTP.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
	log    zerolog.Logger
}

// NewClient builds a client from NOTIFY_URL and NOTIFY_API_KEY. The
// timeout bounds a single dispatch; expiry never re-triggers the RSVP
// write, it only marks the dispatch failed.
func NewClient() *Client {
	url := os.Getenv("NOTIFY_URL")
	if url == "" {
		url = "http://localhost:8090/send"
	}
	return NewClientWithURL(url, os.Getenv("NOTIFY_API_KEY"))
}

// NewClientWithURL builds a client against an explicit endpoint.
func NewClientWithURL(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "notification").Logger(),
	}
}

// Send posts one confirmation request. It always returns a Result; the
// error value is informational and carries the cause for logging.
func (c *Client) Send(ctx context.Context, req Request) (Result, error) {
	result := Result{DispatchID: uuid.NewString()}

	body, err := json.Marshal(req)
	if err != nil {
		return result, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return result, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.log.Info().
		Str("dispatch_id", result.DispatchID).
		Str("email", req.Email).
		Str("location", string(req.Location)).
		Msg("dispatching confirmation")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error().Str("dispatch_id", result.DispatchID).Err(err).Msg("dispatch failed")
		return result, err
	}
	defer resp.Body.Close()

	var payload struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error().Str("dispatch_id", result.DispatchID).Err(err).Msg("unreadable service response")
		return result, err
	}

	result.Success = resp.StatusCode < 300 && payload.Success
	if !result.Success {
		c.log.Warn().
			Str("dispatch_id", result.DispatchID).
			Int("status", resp.StatusCode).
			Msg("service reported failure")
	}
	return result, nil
}
