// Package series identifies parkrun series locations and event instances.
//
// A Location is one recurring event venue whose published results are scanned.
// The set of locations is closed; routing data (the URL slug for a location)
// is owned by the results fetcher, not by this package.
package series

import (
	"fmt"
	"strings"
)

// Location is a supported parkrun series location.
type Location string

const (
	// Cytadela is the parkrun held in Park Cytadela, Poznań.
	Cytadela Location = "cytadela"
	// LasDebinski is the parkrun held in Las Dębiński, Poznań.
	LasDebinski Location = "lasdebinski"
)

// Locations returns all supported locations in display order.
func Locations() []Location {
	return []Location{Cytadela, LasDebinski}
}

// ParseLocation converts a user-supplied name into a Location.
// Matching is case-insensitive and tolerates surrounding whitespace.
func ParseLocation(name string) (Location, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, loc := range Locations() {
		if normalized == string(loc) {
			return loc, nil
		}
	}
	return "", fmt.Errorf("unknown location %q (supported: %s)", name, locationNames())
}

func locationNames() string {
	names := make([]string, 0, len(Locations()))
	for _, loc := range Locations() {
		names = append(names, string(loc))
	}
	return strings.Join(names, ", ")
}

// String returns the canonical lowercase name of the location.
func (l Location) String() string {
	return string(l)
}
