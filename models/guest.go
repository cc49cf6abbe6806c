package models

import (
	"time"
)

// Guest is the durable invite-code record. Guests are created by the
// organizer through the admin API and are read-only to the RSVP engine.
type Guest struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	InviteCode   string             `gorm:"size:32;not null;unique" json:"invite_code"`
	FirstName    string             `gorm:"size:255;not null" json:"first_name"`
	LastName     string             `gorm:"size:255;not null" json:"last_name"`
	Entitlements []GuestEntitlement `gorm:"foreignKey:GuestID" json:"entitlements,omitempty"`
	GroupMembers []*Guest           `gorm:"many2many:guest_group_members;joinForeignKey:GuestID;joinReferences:MemberID" json:"group_members,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// GuestEntitlement pairs a guest with a location they may respond to.
type GuestEntitlement struct {
	GuestID  uint     `gorm:"primaryKey" json:"guest_id"`
	Location Location `gorm:"primaryKey;size:32" json:"location"`
}

// FullName returns the guest's display name.
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// EntitledTo reports whether the guest may respond for the given location.
func (g *Guest) EntitledTo(location Location) bool {
	for _, e := range g.Entitlements {
		if e.Location == location {
			return true
		}
	}
	return false
}

// EntitlementLocations returns the guest's locations in stored order.
func (g *Guest) EntitlementLocations() []Location {
	locations := make([]Location, 0, len(g.Entitlements))
	for _, e := range g.Entitlements {
		locations = append(locations, e.Location)
	}
	return locations
}
