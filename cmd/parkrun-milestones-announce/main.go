package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/parkrun-tools/milestones/internal/filter"
	"github.com/parkrun-tools/milestones/internal/notifier"
	"github.com/parkrun-tools/milestones/internal/report"
)

var (
	reportFile    = flag.String("report-file", "", "Path to a saved report JSON file (or read from stdin)")
	channel       = flag.String("channel", "twitter", "Announcement channel: twitter or telegram")
	dryRun        = flag.Bool("dry-run", false, "Print announcements without posting")
	maxCelebrants = flag.Int("max-celebrants", 10, "Maximum number of celebrants to announce")
	filterExpr    = flag.String("filter", "", "Filter expression, e.g. 'milestone:100 juniors'")
)

func main() {
	flag.Parse()

	// Read the report from file or stdin
	var reader io.Reader
	if *reportFile != "" {
		f, err := os.Open(*reportFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening report file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	rep, err := report.Decode(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing report: %v\n", err)
		os.Exit(1)
	}

	if len(rep.Celebrants) == 0 {
		fmt.Println("No milestones to announce")
		os.Exit(0)
	}

	// Filter celebrants if requested
	flt, err := filter.Parse(*filterExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing filter: %v\n", err)
		os.Exit(1)
	}
	celebrants := flt.Apply(rep.Celebrants)

	// Limit the number of announcements
	if len(celebrants) > *maxCelebrants {
		celebrants = celebrants[:*maxCelebrants]
	}

	if len(celebrants) == 0 {
		fmt.Println("No celebrants match criteria")
		os.Exit(0)
	}

	// Initialize the announcement channel
	var n notifier.Notifier
	if *dryRun {
		n = notifier.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would announce %d celebrant(s):\n\n", len(celebrants))
	} else {
		switch *channel {
		case "twitter":
			client, err := notifier.NewTwitterNotifier()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
				os.Exit(1)
			}
			n = client
		case "telegram":
			client, err := notifier.NewTelegramNotifier()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing Telegram client: %v\n", err)
				os.Exit(1)
			}
			n = client
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown channel %q (must be 'twitter' or 'telegram')\n", *channel)
			os.Exit(1)
		}
	}

	// Post the announcements
	if err := n.Announce(celebrants, rep.Location, rep.LatestEventID); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting announcements: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Successfully announced %d celebrant(s)\n", len(celebrants))
	}
}
