package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AttrOnBehalfOf marks a response submitted by another guest of the
// same party; its value is the submitter's display name.
const AttrOnBehalfOf = "rsvp_on_behalf_of"

// Attributes is the open key-value bag attached to a response (dietary
// restrictions, guest count, free-text message, provenance markers).
// Stored as a JSON text column.
type Attributes map[string]interface{}

// Value implements driver.Valuer.
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("attributes: unsupported column type")
	}
}

// RSVPResponse is the current response state for one (guest, location)
// pair. Each location has its own table; the location itself is therefore
// not a column but the repository partition the row lives in.
type RSVPResponse struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	InviteCode string     `gorm:"size:32;not null;uniqueIndex" json:"invite_code"`
	Attending  bool       `gorm:"not null" json:"attending"`
	FirstName  string     `gorm:"size:255;not null" json:"first_name"`
	LastName   string     `gorm:"size:255;not null" json:"last_name"`
	Email      string     `gorm:"size:255;not null" json:"email"`
	Phone      string     `gorm:"size:64;not null" json:"phone"`
	Attributes Attributes `gorm:"type:text" json:"attributes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ResponseFields are the mutable fields written on every upsert.
type ResponseFields struct {
	Attending  bool
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Attributes Attributes
}
