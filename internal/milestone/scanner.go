package milestone

import (
	"context"
	"fmt"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// Fetcher retrieves the participant rows of a single event. When ref is
// LatestEvent the implementation resolves the most recent published event and
// returns its number alongside the rows; otherwise it fetches exactly the
// referenced event. Rows come back in published order.
type Fetcher interface {
	FetchEvent(ctx context.Context, loc series.Location, ref series.EventRef) (rows []finisher.Finisher, resolvedID int, err error)
}

// Scanner walks past events of one series and collects milestone celebrants.
type Scanner struct {
	fetcher    Fetcher
	classifier *Classifier

	// Progress, when set, is called after each event page has been
	// classified, with the resolved event number and the count of
	// qualifying rows on that page. It must not block.
	Progress func(eventID, celebrants int)
}

// NewScanner creates a Scanner over the given fetcher and classifier.
func NewScanner(f Fetcher, c *Classifier) *Scanner {
	return &Scanner{
		fetcher:    f,
		classifier: c,
	}
}

// ScanResult is the outcome of one backward walk over a series.
type ScanResult struct {
	// Celebrants lists qualifying finishers in discovery order.
	Celebrants []finisher.Finisher

	// LatestEventID is the number of the newest event seen by the walk.
	LatestEventID int

	// EventsScanned is how many event pages were actually fetched.
	EventsScanned int
}

// Scan walks up to eventsLimit events backward in time, starting from the
// latest published one, and returns every finisher crossing a tracked
// milestone, stamped with the event number at which the row was observed.
//
// The same (runs, name, age group) triple can show up on several scanned
// pages when the source serves a stale page; the first occurrence wins, and
// since the walk runs newest to oldest that is always the most recent one.
// Results keep discovery order; callers re-sort for display.
//
// The walk stops early once the next event number would be zero or negative:
// event #1 is the oldest page that exists, and a fetch below it is never
// attempted. Any fetch failure aborts the whole scan with no partial result.
//
// The result also carries the newest event number seen and the count of pages
// fetched, so callers can report on the scan itself.
func (s *Scanner) Scan(ctx context.Context, loc series.Location, eventsLimit int) (*ScanResult, error) {
	if eventsLimit < 1 {
		return nil, fmt.Errorf("events limit must be positive, got %d", eventsLimit)
	}

	ref := series.LatestEvent()
	seen := make(map[finisher.Key]struct{})
	result := &ScanResult{Celebrants: make([]finisher.Finisher, 0)}

	for i := 0; i < eventsLimit; i++ {
		rows, eventID, err := s.fetcher.FetchEvent(ctx, loc, ref)
		if err != nil {
			return nil, fmt.Errorf("scanning %s event %s: %w", loc, ref, err)
		}
		if i == 0 {
			result.LatestEventID = eventID
		}
		result.EventsScanned++

		qualifying := make([]finisher.Finisher, 0)
		for _, row := range rows {
			if s.classifier.IsMilestone(row) {
				qualifying = append(qualifying, row)
			}
		}
		// Ascending by runs groups near-simultaneous milestones within the
		// page; stability keeps the published order among equal counts.
		finisher.SortByRunsAscending(qualifying)

		for _, row := range qualifying {
			key := row.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			row.LastEventID = eventID
			seen[key] = struct{}{}
			result.Celebrants = append(result.Celebrants, row)
		}

		if s.Progress != nil {
			s.Progress(eventID, len(qualifying))
		}

		ref = series.EventNumber(eventID - 1)
		if eventID-1 <= 0 {
			break
		}
	}

	return result, nil
}
