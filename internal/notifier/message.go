package notifier

import (
	"fmt"
	"html"
	"unicode/utf8"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// formatAnnouncement formats a single celebrant as a post
func formatAnnouncement(fin finisher.Finisher, location series.Location, latestEventID int) string {
	msg := "🎉 parkrun milestone incoming!\n\n"

	if fin.AgeGroup != "" {
		msg += fmt.Sprintf("🏃 %s (%s)\n", fin.Name, fin.AgeGroup)
	} else {
		msg += fmt.Sprintf("🏃 %s\n", fin.Name)
	}

	msg += fmt.Sprintf("🎯 parkrun number %d is next\n", fin.EffectiveRuns())
	msg += fmt.Sprintf("📍 Last seen at %s event #%d\n", location, latestEventID)

	if finisher.IsJuniorAgeGroup(fin.AgeGroup) {
		msg += "⭐ Junior milestone\n"
	}

	msg += "\n#parkrun #" + string(location)

	// Posting limit is 280 characters
	if utf8.RuneCountInString(msg) > 280 {
		runes := []rune(msg)
		msg = string(runes[:277]) + "..."
	}

	return msg
}

// formatDigest formats all celebrants as a single HTML digest message
func formatDigest(celebrants []finisher.Finisher, location series.Location, latestEventID int) string {
	if len(celebrants) == 0 {
		return fmt.Sprintf("No milestones coming up at %s.", location)
	}

	msg := "🎉 <b>parkrun milestone alerts</b>\n\n"
	msg += fmt.Sprintf("📍 %s • event #%d • %d runner%s\n\n",
		location, latestEventID, len(celebrants), pluralize(len(celebrants)))

	for _, fin := range celebrants {
		msg += fmt.Sprintf("  • %s", html.EscapeString(fin.Name))
		if fin.AgeGroup != "" {
			msg += fmt.Sprintf(" (%s)", html.EscapeString(fin.AgeGroup))
		}
		msg += fmt.Sprintf(" - run %d next\n", fin.EffectiveRuns())
	}

	msg += "\n🏃 <i>See you on Saturday!</i>"

	return msg
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
