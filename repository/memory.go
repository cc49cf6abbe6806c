package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mihaianh/wedding_backend/models"
)

// MemoryGuestDirectory is an in-memory GuestDirectory. The engine is
// tested against it instead of a live database.
type MemoryGuestDirectory struct {
	mu     sync.RWMutex
	guests map[string]*models.Guest
}

// NewMemoryGuestDirectory creates an empty in-memory directory.
func NewMemoryGuestDirectory() *MemoryGuestDirectory {
	return &MemoryGuestDirectory{guests: make(map[string]*models.Guest)}
}

// Add stores a guest keyed by its canonical invite code.
func (d *MemoryGuestDirectory) Add(guest *models.Guest) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.guests[strings.ToUpper(guest.InviteCode)] = guest
}

// FindByCode implements GuestDirectory.
func (d *MemoryGuestDirectory) FindByCode(ctx context.Context, code string) (*models.Guest, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	guest, ok := d.guests[code]
	if !ok {
		return nil, ErrNotFound
	}
	return guest, nil
}

// MemoryRSVPRepository is an in-memory RSVPRepository for one location.
// It counts upserts so tests can assert that reconfirmations never write.
type MemoryRSVPRepository struct {
	mu        sync.Mutex
	responses map[string]*models.RSVPResponse
	nextID    uint

	// Upserts is the number of writes performed since creation.
	Upserts int
	// FailWith, when set, is returned by every call to simulate a
	// storage outage.
	FailWith error
}

// NewMemoryRSVPRepository creates an empty in-memory repository.
func NewMemoryRSVPRepository() *MemoryRSVPRepository {
	return &MemoryRSVPRepository{responses: make(map[string]*models.RSVPResponse)}
}

// FindByInviteCode implements RSVPRepository.
func (r *MemoryRSVPRepository) FindByInviteCode(ctx context.Context, code string) (*models.RSVPResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	resp, ok := r.responses[code]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *resp
	return &copied, nil
}

// Upsert implements RSVPRepository.
func (r *MemoryRSVPRepository) Upsert(ctx context.Context, code string, fields models.ResponseFields) (*models.RSVPResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.Upserts++

	now := time.Now()
	resp, ok := r.responses[code]
	if !ok {
		r.nextID++
		resp = &models.RSVPResponse{ID: r.nextID, InviteCode: code, CreatedAt: now}
		r.responses[code] = resp
	}
	resp.Attending = fields.Attending
	resp.FirstName = fields.FirstName
	resp.LastName = fields.LastName
	resp.Email = fields.Email
	resp.Phone = fields.Phone
	resp.Attributes = fields.Attributes
	resp.UpdatedAt = now

	copied := *resp
	return &copied, nil
}
