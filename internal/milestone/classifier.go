package milestone

import (
	"github.com/parkrun-tools/milestones/internal/finisher"
)

// Thresholds holds the run-count totals that count as milestones. Senior
// thresholds apply to every finisher; junior thresholds additionally apply to
// finishers in junior or unknown age groups.
type Thresholds struct {
	Senior []int
	Junior []int
}

// DefaultThresholds returns the milestone sets used by parkrun: the classic
// 25/50/100/250/500 clubs plus the junior 10 club.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Senior: []int{25, 50, 100, 250, 500},
		Junior: []int{10},
	}
}

// Classifier decides whether a finisher row is crossing a tracked milestone.
type Classifier struct {
	senior map[int]struct{}
	junior map[int]struct{}
}

// NewClassifier compiles the threshold sets for O(1) membership checks.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{
		senior: toSet(t.Senior),
		junior: toSet(t.Junior),
	}
}

func toSet(values []int) map[int]struct{} {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsMilestone reports whether the finisher's count after this event lands on
// a tracked milestone. Senior thresholds match regardless of age group;
// junior thresholds match only junior or unclassified finishers.
func (c *Classifier) IsMilestone(f finisher.Finisher) bool {
	effective := f.EffectiveRuns()
	if _, ok := c.senior[effective]; ok {
		return true
	}
	if !finisher.IsJuniorAgeGroup(f.AgeGroup) {
		return false
	}
	_, ok := c.junior[effective]
	return ok
}
