// Package filter narrows milestone scan results before reporting or announcing.
//
// Filters match individual finishers based on various criteria:
//   - Upcoming milestones (exact run counts)
//   - Age group codes (prefix matching, case-insensitive)
//   - Display names (substring matching, case-insensitive)
//   - Juniors only (junior and unknown age groups)
//   - Minimum completed run count
//
// Filters can be parsed from a compact command line expression, see Parse.
//
// Example usage:
//
//	// Keep juniors approaching their 10th run
//	f := filter.NewFilter()
//	f.JuniorsOnly = true
//	f.Milestones = []int{10}
//
//	// Apply filter to scan results
//	celebrants = f.Apply(celebrants)
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parkrun-tools/milestones/internal/finisher"
)

// Filter represents finisher filtering criteria
type Filter struct {
	// Milestones keeps finishers whose upcoming run count equals one of
	// these values.
	Milestones []int `json:"milestones,omitempty"`

	// AgeGroups keeps finishers whose age group code starts with one of
	// these prefixes (case-insensitive), e.g. "J", "SM", "VW45".
	AgeGroups []string `json:"age_groups,omitempty"`

	// Names keeps finishers whose display name contains one of these
	// substrings (case-insensitive).
	Names []string `json:"names,omitempty"`

	// JuniorsOnly keeps only finishers in junior or unknown age groups.
	JuniorsOnly bool `json:"juniors_only,omitempty"`

	// MinRuns drops finishers with fewer completed runs than this.
	MinRuns int `json:"min_runs,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all finishers until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Milestones: []int{},
		AgeGroups:  []string{},
		Names:      []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all finishers.
func (f *Filter) IsEmpty() bool {
	return len(f.Milestones) == 0 &&
		len(f.AgeGroups) == 0 &&
		len(f.Names) == 0 &&
		!f.JuniorsOnly &&
		f.MinRuns == 0
}

// Matches checks if a finisher passes all active filter criteria.
// An empty filter matches all finishers.
//
// Matching logic:
//   - Milestones: the finisher's upcoming run count must equal one of the values
//   - AgeGroups: the age group code must start with one of the prefixes (case-insensitive)
//   - Names: the display name must contain one of the substrings (case-insensitive)
//   - JuniorsOnly: the age group must be junior or unknown
//   - MinRuns: the completed run count must be at least this value
func (f *Filter) Matches(fin finisher.Finisher) bool {
	// Empty filter matches all finishers
	if f.IsEmpty() {
		return true
	}

	// Check upcoming milestone
	if len(f.Milestones) > 0 {
		matched := false
		for _, m := range f.Milestones {
			if fin.EffectiveRuns() == m {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check age group prefixes (case-insensitive)
	if len(f.AgeGroups) > 0 {
		matched := false
		groupUpper := strings.ToUpper(fin.AgeGroup)
		for _, prefix := range f.AgeGroups {
			if strings.HasPrefix(groupUpper, strings.ToUpper(prefix)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check display name (case-insensitive substring match)
	if len(f.Names) > 0 {
		matched := false
		nameLower := strings.ToLower(fin.Name)
		for _, name := range f.Names {
			if strings.Contains(nameLower, strings.ToLower(name)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check juniors only
	if f.JuniorsOnly && !finisher.IsJuniorAgeGroup(fin.AgeGroup) {
		return false
	}

	// Check minimum completed runs
	if f.MinRuns > 0 && fin.Runs < f.MinRuns {
		return false
	}

	return true
}

// Apply applies the filter to scan results and returns only matching finishers.
// If the filter is empty, returns the original list unchanged.
// Otherwise, returns a new slice containing only finishers that match all criteria.
func (f *Filter) Apply(finishers []finisher.Finisher) []finisher.Finisher {
	if f.IsEmpty() {
		return finishers
	}

	var filtered []finisher.Finisher
	for _, fin := range finishers {
		if f.Matches(fin) {
			filtered = append(filtered, fin)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Returns "No active filters" if the filter is empty.
// Format: "Milestones: 50, 100 | Age groups: J | Juniors only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Milestones) > 0 {
		values := make([]string, len(f.Milestones))
		for i, m := range f.Milestones {
			values[i] = strconv.Itoa(m)
		}
		parts = append(parts, fmt.Sprintf("Milestones: %s", strings.Join(values, ", ")))
	}

	if len(f.AgeGroups) > 0 {
		parts = append(parts, fmt.Sprintf("Age groups: %s", strings.Join(f.AgeGroups, ", ")))
	}

	if len(f.Names) > 0 {
		parts = append(parts, fmt.Sprintf("Names: %s", strings.Join(f.Names, ", ")))
	}

	if f.JuniorsOnly {
		parts = append(parts, "Juniors only")
	}

	if f.MinRuns > 0 {
		parts = append(parts, fmt.Sprintf("Min runs: %d", f.MinRuns))
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the filter.
// All slices are copied to new memory locations, ensuring modifications to
// the clone don't affect the original.
func (f *Filter) Clone() *Filter {
	clone := &Filter{
		JuniorsOnly: f.JuniorsOnly,
		MinRuns:     f.MinRuns,
	}

	if len(f.Milestones) > 0 {
		clone.Milestones = make([]int, len(f.Milestones))
		copy(clone.Milestones, f.Milestones)
	} else {
		clone.Milestones = []int{}
	}

	if len(f.AgeGroups) > 0 {
		clone.AgeGroups = make([]string, len(f.AgeGroups))
		copy(clone.AgeGroups, f.AgeGroups)
	} else {
		clone.AgeGroups = []string{}
	}

	if len(f.Names) > 0 {
		clone.Names = make([]string, len(f.Names))
		copy(clone.Names, f.Names)
	} else {
		clone.Names = []string{}
	}

	return clone
}
