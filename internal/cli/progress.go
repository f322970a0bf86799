package cli

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// newProgressBar creates a progress bar for the event walk. It writes to
// stderr so stdout stays reserved for the report itself.
func newProgressBar(events int) *progressbar.ProgressBar {
	return progressbar.NewOptions64(int64(events),
		progressbar.OptionSetDescription("scanning events"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(false),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
