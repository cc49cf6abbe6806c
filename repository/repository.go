package repository

import (
	"context"
	"errors"

	"github.com/mihaianh/wedding_backend/models"
)

// ErrNotFound is returned when a lookup matches no record. Callers must
// not be able to distinguish an absent record from a malformed key.
var ErrNotFound = errors.New("record not found")

// GuestDirectory is the read-only view of the guest list. Implementations
// must return guests with entitlements and group members (including the
// members' own entitlements) populated.
type GuestDirectory interface {
	FindByCode(ctx context.Context, code string) (*models.Guest, error)
}

// RSVPRepository holds the responses for a single location. One instance
// exists per configured location; a submission never touches more than one.
type RSVPRepository interface {
	FindByInviteCode(ctx context.Context, code string) (*models.RSVPResponse, error)
	Upsert(ctx context.Context, code string, fields models.ResponseFields) (*models.RSVPResponse, error)
}
