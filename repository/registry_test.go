package repository

import (
	"testing"

	"github.com/mihaianh/wedding_backend/models"
)

func TestRegistryLookupAndOrder(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Get(models.LocationRomania); ok {
		t.Fatal("empty registry must not resolve a location")
	}

	romania := NewMemoryRSVPRepository()
	vietnam := NewMemoryRSVPRepository()
	registry.Register(models.LocationRomania, romania)
	registry.Register(models.LocationVietnam, vietnam)

	repo, ok := registry.Get(models.LocationRomania)
	if !ok || repo != RSVPRepository(romania) {
		t.Error("lookup returned the wrong repository")
	}

	locations := registry.Locations()
	if len(locations) != 2 || locations[0] != models.LocationRomania || locations[1] != models.LocationVietnam {
		t.Errorf("Locations() = %v", locations)
	}
}

func TestRegistryReplaceKeepsOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Register(models.LocationRomania, NewMemoryRSVPRepository())

	replacement := NewMemoryRSVPRepository()
	registry.Register(models.LocationRomania, replacement)

	repo, _ := registry.Get(models.LocationRomania)
	if repo != RSVPRepository(replacement) {
		t.Error("re-registering must replace the repository")
	}
	if len(registry.Locations()) != 1 {
		t.Errorf("Locations() = %v", registry.Locations())
	}
}

func TestRSVPTableName(t *testing.T) {
	if got := RSVPTableName(models.LocationRomania); got != "rsvps_romania" {
		t.Errorf("RSVPTableName = %q", got)
	}
}
