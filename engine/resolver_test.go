package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/repository"
)

func newTestGuest(code, first, last string, locations ...models.Location) *models.Guest {
	g := &models.Guest{InviteCode: code, FirstName: first, LastName: last}
	for _, loc := range locations {
		g.Entitlements = append(g.Entitlements, models.GuestEntitlement{Location: loc})
	}
	return g
}

func newTestResolver() (*Resolver, *repository.MemoryGuestDirectory, map[models.Location]*repository.MemoryRSVPRepository) {
	directory := repository.NewMemoryGuestDirectory()
	registry := repository.NewRegistry()
	repos := map[models.Location]*repository.MemoryRSVPRepository{
		models.LocationRomania: repository.NewMemoryRSVPRepository(),
		models.LocationVietnam: repository.NewMemoryRSVPRepository(),
	}
	for loc, repo := range repos {
		registry.Register(loc, repo)
	}
	return NewResolver(directory, registry), directory, repos
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"abc123", "ABC123"},
		{"  ABC123  ", "ABC123"},
		{"\taBc123\n", "ABC123"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCode(tt.raw); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolveRejectsEmptyInputBeforeLookup(t *testing.T) {
	resolver, _, _ := newTestResolver()

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := resolver.Resolve(context.Background(), raw)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("Resolve(%q) error = %v, want ValidationError", raw, err)
		}
	}
}

func TestResolveUnknownCode(t *testing.T) {
	resolver, _, _ := newTestResolver()

	_, err := resolver.Resolve(context.Background(), "NOSUCH")
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("Resolve error = %v, want NotFoundError", err)
	}
}

func TestResolveNormalizesBeforeLookup(t *testing.T) {
	resolver, directory, _ := newTestResolver()
	directory.Add(newTestGuest("ABC123", "Andrei", "Popescu", models.LocationRomania))

	guest, err := resolver.Resolve(context.Background(), "  abc123 ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if guest.InviteCode != "ABC123" {
		t.Errorf("InviteCode = %q, want ABC123", guest.InviteCode)
	}
	if guest.FullName() != "Andrei Popescu" {
		t.Errorf("FullName = %q", guest.FullName())
	}
}

func TestResolveReportsRespondedLocations(t *testing.T) {
	resolver, directory, repos := newTestResolver()
	directory.Add(newTestGuest("ABC123", "Andrei", "Popescu", models.LocationRomania, models.LocationVietnam))

	repos[models.LocationRomania].Upsert(context.Background(), "ABC123", models.ResponseFields{Attending: true})

	guest, err := resolver.Resolve(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !guest.HasResponded[models.LocationRomania] {
		t.Error("expected ROMANIA marked responded")
	}
	if guest.HasResponded[models.LocationVietnam] {
		t.Error("expected VIETNAM not responded")
	}

	responded := guest.RespondedLocations()
	if len(responded) != 1 || responded[0] != models.LocationRomania {
		t.Errorf("RespondedLocations = %v", responded)
	}
}

func TestResolveFiltersGroupMembers(t *testing.T) {
	resolver, directory, _ := newTestResolver()

	self := newTestGuest("ABC123", "Andrei", "Popescu", models.LocationRomania)
	sharing := newTestGuest("DEF456", "Elena", "Popescu", models.LocationRomania, models.LocationVietnam)
	disjoint := newTestGuest("GHI789", "Linh", "Tran", models.LocationVietnam)

	// A guest list export once produced self-referencing rows, so the
	// resolver must drop them.
	self.GroupMembers = []*models.Guest{self, sharing, disjoint}
	directory.Add(self)
	directory.Add(sharing)
	directory.Add(disjoint)

	guest, err := resolver.Resolve(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(guest.GroupMembers) != 1 {
		t.Fatalf("GroupMembers = %d, want 1", len(guest.GroupMembers))
	}
	if guest.GroupMembers[0].InviteCode != "DEF456" {
		t.Errorf("member code = %q, want DEF456", guest.GroupMembers[0].InviteCode)
	}
}

func TestResolveGroupMemberRespondedFlags(t *testing.T) {
	resolver, directory, repos := newTestResolver()

	self := newTestGuest("ABC123", "Andrei", "Popescu", models.LocationRomania)
	member := newTestGuest("DEF456", "Elena", "Popescu", models.LocationRomania)
	self.GroupMembers = []*models.Guest{member}
	directory.Add(self)
	directory.Add(member)

	repos[models.LocationRomania].Upsert(context.Background(), "DEF456", models.ResponseFields{Attending: true})

	guest, err := resolver.Resolve(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(guest.GroupMembers) != 1 {
		t.Fatalf("GroupMembers = %d, want 1", len(guest.GroupMembers))
	}
	if !guest.GroupMembers[0].HasResponded[models.LocationRomania] {
		t.Error("expected member marked responded for ROMANIA")
	}
}

func TestResolveSurfacesStorageFailure(t *testing.T) {
	resolver, directory, repos := newTestResolver()
	directory.Add(newTestGuest("ABC123", "Andrei", "Popescu", models.LocationRomania))
	repos[models.LocationRomania].FailWith = errors.New("connection reset")

	_, err := resolver.Resolve(context.Background(), "ABC123")
	var repoErr *RepositoryError
	if !errors.As(err, &repoErr) {
		t.Fatalf("Resolve error = %v, want RepositoryError", err)
	}
}
