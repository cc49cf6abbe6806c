package repository

import (
	"github.com/mihaianh/wedding_backend/models"
)

// Registry maps each configured location to its response repository.
// It replaces string-keyed table dispatch at call sites: a location that
// is not registered simply has no repository to write to.
type Registry struct {
	repos     map[models.Location]RSVPRepository
	locations []models.Location
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{repos: make(map[models.Location]RSVPRepository)}
}

// Register adds a repository for a location, replacing any previous one.
func (r *Registry) Register(location models.Location, repo RSVPRepository) {
	if _, ok := r.repos[location]; !ok {
		r.locations = append(r.locations, location)
	}
	r.repos[location] = repo
}

// Get returns the repository for a location.
func (r *Registry) Get(location models.Location) (RSVPRepository, bool) {
	repo, ok := r.repos[location]
	return repo, ok
}

// Locations returns the registered locations in registration order.
func (r *Registry) Locations() []models.Location {
	out := make([]models.Location, len(r.locations))
	copy(out, r.locations)
	return out
}
