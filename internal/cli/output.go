package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/report"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Colors
var (
	accent  = lipgloss.Color("#FF6600")
	muted   = lipgloss.Color("#666666")
	success = lipgloss.Color("#00CC66")
)

// Styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	juniorStyle  = lipgloss.NewStyle().Foreground(accent)
	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
)

var tableHeaders = [4]string{"Events", "Parkrunner", "Age group", "Last event ID"}

// rightAligned marks the numeric table columns.
var rightAligned = [4]bool{true, false, false, true}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, rep *report.Report, format OutputFormat, plain bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rep)
	case FormatText:
		return writeText(w, rep, plain)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, rep *report.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

// writeText outputs the report as a human-readable ranking table
func writeText(w io.Writer, rep *report.Report, plain bool) error {
	title := fmt.Sprintf("Upcoming milestones at %s (event #%d)", rep.Location, rep.LatestEventID)
	subtitle := fmt.Sprintf("Checked %s, scanned %d %s", rep.CheckedAt, rep.EventsScanned, plural(rep.EventsScanned, "event"))

	fmt.Fprintln(w, render(titleStyle, title, plain))
	fmt.Fprintln(w, render(mutedStyle, subtitle, plain))
	fmt.Fprintln(w)

	if len(rep.Celebrants) == 0 {
		fmt.Fprintln(w, "No milestones coming up.")
		return nil
	}

	rows := make([][4]string, 0, len(rep.Celebrants))
	for _, fin := range rep.Celebrants {
		rows = append(rows, [4]string{
			strconv.Itoa(fin.Runs),
			fin.Name,
			fin.AgeGroup,
			strconv.Itoa(fin.LastEventID),
		})
	}
	widths := columnWidths(rows)

	fmt.Fprintln(w, render(headerStyle, formatRow(tableHeaders, widths), plain))
	for i, row := range rows {
		line := formatRow(row, widths)
		if finisher.IsJuniorAgeGroup(rep.Celebrants[i].AgeGroup) {
			line = render(juniorStyle, line, plain)
		}
		fmt.Fprintln(w, line)
	}

	total := fmt.Sprintf("Total: %d %s coming up", len(rep.Celebrants), plural(len(rep.Celebrants), "milestone"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, render(successStyle, total, plain))

	return nil
}

// columnWidths returns per-column widths wide enough for the headers and
// every row, counted in runes so multi-byte names line up.
func columnWidths(rows [][4]string) [4]int {
	var widths [4]int
	for i, h := range tableHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// formatRow renders one table row with two-space column gaps.
func formatRow(row [4]string, widths [4]int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = pad(cell, widths[i], rightAligned[i])
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}

// pad aligns a cell within its column, counting runes rather than bytes.
func pad(s string, width int, right bool) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	spaces := strings.Repeat(" ", gap)
	if right {
		return spaces + s
	}
	return s + spaces
}

// render applies a style unless plain output was requested.
func render(style lipgloss.Style, s string, plain bool) string {
	if plain {
		return s
	}
	return style.Render(s)
}

// plural returns the singular or plural form of a unit word.
func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
