package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/repository"
)

// GuestView is what an invite code resolves to: identity, entitlements,
// prior-response state, and the group members the guest may answer for.
type GuestView struct {
	InviteCode   string                   `json:"invite_code"`
	FirstName    string                   `json:"first_name"`
	LastName     string                   `json:"last_name"`
	Entitlements []models.Location        `json:"entitlements"`
	HasResponded map[models.Location]bool `json:"has_responded"`
	GroupMembers []GroupMemberView        `json:"group_members"`
}

// FullName returns the guest's display name.
func (v *GuestView) FullName() string {
	return v.FirstName + " " + v.LastName
}

// RespondedLocations returns the entitled locations that already hold a
// response, in entitlement order.
func (v *GuestView) RespondedLocations() []models.Location {
	responded := make([]models.Location, 0, len(v.Entitlements))
	for _, loc := range v.Entitlements {
		if v.HasResponded[loc] {
			responded = append(responded, loc)
		}
	}
	return responded
}

// GroupMemberView is a guest the resolved guest may submit a response for.
type GroupMemberView struct {
	InviteCode   string                   `json:"invite_code"`
	FirstName    string                   `json:"first_name"`
	LastName     string                   `json:"last_name"`
	HasResponded map[models.Location]bool `json:"has_responded"`
}

// NormalizeCode canonicalizes an invite code: surrounding whitespace
// trimmed, uppercased. Codes are stored in this form.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Resolver turns a raw invite code into a GuestView.
type Resolver struct {
	directory repository.GuestDirectory
	registry  *repository.Registry
}

// NewResolver creates a resolver over the given directory and registry.
func NewResolver(directory repository.GuestDirectory, registry *repository.Registry) *Resolver {
	return &Resolver{directory: directory, registry: registry}
}

// Resolve normalizes and looks up an invite code. It is a pure read.
// Empty input fails before any lookup; anything unresolvable afterwards is
// a NotFoundError regardless of cause.
func (r *Resolver) Resolve(ctx context.Context, rawCode string) (*GuestView, error) {
	code := NormalizeCode(rawCode)
	if code == "" {
		return nil, &ValidationError{Field: "invite_id"}
	}

	guest, err := r.directory.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{}
	}
	if err != nil {
		return nil, &RepositoryError{Err: err}
	}

	view := &GuestView{
		InviteCode:   guest.InviteCode,
		FirstName:    guest.FirstName,
		LastName:     guest.LastName,
		Entitlements: guest.EntitlementLocations(),
		GroupMembers: []GroupMemberView{},
	}

	view.HasResponded, err = r.respondedFlags(ctx, guest.InviteCode, view.Entitlements)
	if err != nil {
		return nil, err
	}

	for _, member := range guest.GroupMembers {
		if member.InviteCode == guest.InviteCode {
			continue
		}
		if !sharesLocation(member, view.Entitlements) {
			continue
		}
		flags, err := r.respondedFlags(ctx, member.InviteCode, view.Entitlements)
		if err != nil {
			return nil, err
		}
		view.GroupMembers = append(view.GroupMembers, GroupMemberView{
			InviteCode:   member.InviteCode,
			FirstName:    member.FirstName,
			LastName:     member.LastName,
			HasResponded: flags,
		})
	}

	return view, nil
}

// respondedFlags checks each location's repository for an existing
// response under the given code.
func (r *Resolver) respondedFlags(ctx context.Context, code string, locations []models.Location) (map[models.Location]bool, error) {
	flags := make(map[models.Location]bool, len(locations))
	for _, loc := range locations {
		repo, ok := r.registry.Get(loc)
		if !ok {
			continue
		}
		_, err := repo.FindByInviteCode(ctx, code)
		switch {
		case err == nil:
			flags[loc] = true
		case errors.Is(err, repository.ErrNotFound):
			flags[loc] = false
		default:
			return nil, &RepositoryError{Err: err}
		}
	}
	return flags, nil
}

// sharesLocation reports whether the member is entitled to at least one of
// the given locations.
func sharesLocation(member *models.Guest, locations []models.Location) bool {
	for _, loc := range locations {
		if member.EntitledTo(loc) {
			return true
		}
	}
	return false
}
