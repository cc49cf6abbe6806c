package models

import (
	"strings"
)

// Location identifies one of the wedding's sub-events. The set is open:
// deployments configure it via the LOCATIONS environment variable rather
// than a closed enum, so adding a venue is a config change, not a code change.
type Location string

const (
	LocationRomania Location = "ROMANIA"
	LocationVietnam Location = "VIETNAM"
)

// NormalizeLocation canonicalizes a location tag the same way invite codes
// are canonicalized: trimmed and uppercased.
func NormalizeLocation(raw string) Location {
	return Location(strings.ToUpper(strings.TrimSpace(raw)))
}

// ParseLocations splits a comma-separated list of location tags,
// dropping empty entries.
func ParseLocations(raw string) []Location {
	var locations []Location
	for _, part := range strings.Split(raw, ",") {
		loc := NormalizeLocation(part)
		if loc != "" {
			locations = append(locations, loc)
		}
	}
	return locations
}
