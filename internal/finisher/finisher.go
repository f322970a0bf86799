package finisher

import "strings"

// Finisher represents one participant row of one event's results.
type Finisher struct {
	// Runs is the number of parkruns completed before this event.
	Runs int `json:"runs"`
	// Name is the participant's name as published.
	Name string `json:"name"`
	// AgeGroup is the published age-group code, e.g. "SM35-39" or "JM11-14".
	// Empty when the participant is unclassified.
	AgeGroup string `json:"age_group"`
	// LastEventID is the event number at which this row was observed.
	// It is stamped by the scanner and is zero until then.
	LastEventID int `json:"last_event_id"`
}

// Key uniquely identifies one milestone occurrence. A given run-count value
// for a given named participant in a given age group is a single event in
// time, so the triple pins the occurrence even when the same person shows up
// on several scanned pages.
type Key struct {
	Runs     int
	Name     string
	AgeGroup string
}

// Key derives the de-duplication key for the row.
func (f Finisher) Key() Key {
	return Key{Runs: f.Runs, Name: f.Name, AgeGroup: f.AgeGroup}
}

// EffectiveRuns returns the participant's total after completing this event.
// This is the value tested against milestone thresholds.
func (f Finisher) EffectiveRuns() int {
	return f.Runs + 1
}

// IsJuniorAgeGroup reports whether an age-group code counts as junior for
// milestone purposes. A leading "J" marks junior categories. The source omits
// the age group for unclassified participants, and an empty code counts as
// junior-eligible too.
func IsJuniorAgeGroup(code string) bool {
	return code == "" || strings.HasPrefix(code, "J")
}
