package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Filter from a compact expression.
//
// The expression is a whitespace-separated list of terms:
//   - milestone:50,100    upcoming run counts (alias: milestones)
//   - agegroup:J,VM50     age group prefixes (alias: agegroups)
//   - name:nowak          display name substrings (alias: names)
//   - juniors             junior and unknown age groups only
//   - minruns:40          minimum completed run count
//
// Terms combine with AND; comma-separated values within a term combine
// with OR. Example: "milestone:50,100 agegroup:J juniors".
//
// An empty expression yields an empty filter that matches everything.
func Parse(input string) (*Filter, error) {
	f := NewFilter()

	for _, term := range strings.Fields(input) {
		if strings.EqualFold(term, "juniors") {
			f.JuniorsOnly = true
			continue
		}

		key, value, found := strings.Cut(term, ":")
		if !found || value == "" {
			return nil, fmt.Errorf("invalid filter term %q. Use key:value pairs such as 'milestone:50' or the bare word 'juniors'", term)
		}

		switch strings.ToLower(key) {
		case "milestone", "milestones":
			values, err := parseRunCounts(value)
			if err != nil {
				return nil, fmt.Errorf("invalid milestone list %q: %w", value, err)
			}
			f.Milestones = append(f.Milestones, values...)

		case "agegroup", "agegroups":
			f.AgeGroups = append(f.AgeGroups, splitList(value)...)

		case "name", "names":
			f.Names = append(f.Names, splitList(value)...)

		case "minruns":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid minimum run count %q", value)
			}
			f.MinRuns = n

		default:
			return nil, fmt.Errorf("unknown filter key %q. Supported keys: milestone, agegroup, name, minruns", key)
		}
	}

	return f, nil
}

// splitList splits a comma-separated value list, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseRunCounts parses a comma-separated list of positive run counts.
func parseRunCounts(value string) ([]int, error) {
	var out []int
	for _, part := range splitList(value) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		if n < 1 {
			return nil, fmt.Errorf("%d is not a positive run count", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
