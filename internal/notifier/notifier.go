package notifier

import (
	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// Notifier defines the interface for posting milestone announcements
type Notifier interface {
	// Announce posts congratulations for the given celebrants
	Announce(celebrants []finisher.Finisher, location series.Location, latestEventID int) error
}
