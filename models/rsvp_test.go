package models

import (
	"testing"
)

func TestAttributesRoundTrip(t *testing.T) {
	attrs := Attributes{
		AttrOnBehalfOf: "Andrei Popescu",
		"dietary":      "vegetarian",
		"guest_count":  float64(2),
	}

	value, err := attrs.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded Attributes
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if decoded[AttrOnBehalfOf] != "Andrei Popescu" {
		t.Errorf("on-behalf-of = %v", decoded[AttrOnBehalfOf])
	}
	if decoded["guest_count"] != float64(2) {
		t.Errorf("guest_count = %v", decoded["guest_count"])
	}
}

func TestAttributesNil(t *testing.T) {
	var attrs Attributes

	value, err := attrs.Value()
	if err != nil || value != nil {
		t.Errorf("Value() = %v, %v", value, err)
	}

	var decoded Attributes
	if err := decoded.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if decoded != nil {
		t.Errorf("decoded = %v, want nil", decoded)
	}
}

func TestGuestEntitlements(t *testing.T) {
	guest := &Guest{
		FirstName: "Andrei",
		LastName:  "Popescu",
		Entitlements: []GuestEntitlement{
			{Location: LocationRomania},
		},
	}

	if !guest.EntitledTo(LocationRomania) {
		t.Error("expected entitlement to ROMANIA")
	}
	if guest.EntitledTo(LocationVietnam) {
		t.Error("unexpected entitlement to VIETNAM")
	}
	if guest.FullName() != "Andrei Popescu" {
		t.Errorf("FullName = %q", guest.FullName())
	}
}

func TestParseLocations(t *testing.T) {
	tests := []struct {
		raw  string
		want []Location
	}{
		{"ROMANIA,VIETNAM", []Location{LocationRomania, LocationVietnam}},
		{" romania , vietnam ", []Location{LocationRomania, LocationVietnam}},
		{"ROMANIA,,", []Location{LocationRomania}},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseLocations(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("ParseLocations(%q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseLocations(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}
