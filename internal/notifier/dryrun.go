package notifier

import (
	"fmt"
	"unicode/utf8"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Announce prints the announcements that would be posted
func (n *DryRunNotifier) Announce(celebrants []finisher.Finisher, location series.Location, latestEventID int) error {
	for i, fin := range celebrants {
		msg := formatAnnouncement(fin, location, latestEventID)
		fmt.Printf("--- Announcement %d/%d ---\n", i+1, len(celebrants))
		fmt.Println(msg)
		fmt.Printf("\n(Length: %d characters)\n\n", utf8.RuneCountInString(msg))
	}
	return nil
}
