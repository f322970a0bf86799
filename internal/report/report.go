package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// Report is the persistent record of one milestone scan.
type Report struct {
	// ScanID uniquely identifies the scan that produced this report.
	ScanID string `json:"scan_id"`

	// Location is the event series that was scanned.
	Location series.Location `json:"location"`

	// LatestEventID is the newest event number seen during the scan.
	LatestEventID int `json:"latest_event_id"`

	// EventsScanned is how many event pages the scan walked through.
	EventsScanned int `json:"events_scanned"`

	// CheckedAt records when the scan finished, in RFC 3339 UTC.
	CheckedAt string `json:"checked_at"`

	// Celebrants lists finishers approaching a milestone, ordered by
	// descending completed run count.
	Celebrants []finisher.Finisher `json:"celebrants"`
}

// New creates a report for a finished scan. The celebrant list is copied and
// ranked by descending run count; the input slice is left untouched.
func New(location series.Location, latestEventID, eventsScanned int, celebrants []finisher.Finisher) *Report {
	ranked := make([]finisher.Finisher, len(celebrants))
	copy(ranked, celebrants)
	finisher.SortByRunsDescending(ranked)

	return &Report{
		ScanID:        uuid.New().String(),
		Location:      location,
		LatestEventID: latestEventID,
		EventsScanned: eventsScanned,
		CheckedAt:     time.Now().UTC().Format(time.RFC3339),
		Celebrants:    ranked,
	}
}

// Decode reads a JSON report from r, e.g. a saved report file or stdin.
func Decode(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}

	if _, err := series.ParseLocation(string(rep.Location)); err != nil {
		return nil, fmt.Errorf("report has unknown location: %w", err)
	}

	// Ensure the celebrant list is initialized
	if rep.Celebrants == nil {
		rep.Celebrants = []finisher.Finisher{}
	}

	return &rep, nil
}
