package results

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// parseResultsPage extracts finisher rows from a results document and
// resolves the event number. For a latest-event reference the number comes
// from the page header; otherwise the referenced number is returned as is,
// matching what the site serves.
func parseResultsPage(r io.Reader, url string, ref series.EventRef) ([]finisher.Finisher, int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, 0, transportErr(url, "parsing HTML", err)
	}

	table := doc.Find("table.Results-table")
	if table.Length() == 0 {
		return nil, 0, transportErr(url, "missing results table", nil)
	}

	rows := make([]finisher.Finisher, 0)
	var rowErr error
	table.Find("tr.Results-table-row").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		runsAttr, ok := sel.Attr("data-runs")
		if !ok {
			rowErr = transportErr(url, fmt.Sprintf("result row %d lacks data-runs", i+1), nil)
			return false
		}
		runs, err := strconv.Atoi(strings.TrimSpace(runsAttr))
		if err != nil || runs < 0 {
			rowErr = transportErr(url, fmt.Sprintf("result row %d has malformed data-runs %q", i+1, runsAttr), nil)
			return false
		}

		// Age group is frequently absent for new or unclassified
		// participants; an empty code is a valid value, not a defect.
		rows = append(rows, finisher.Finisher{
			Runs:     runs,
			Name:     strings.TrimSpace(sel.AttrOr("data-name", "")),
			AgeGroup: strings.TrimSpace(sel.AttrOr("data-agegroup", "")),
		})
		return true
	})
	if rowErr != nil {
		return nil, 0, rowErr
	}

	if !ref.IsLatest() {
		return rows, ref.Number(), nil
	}

	number, err := resolveEventNumber(doc)
	if err != nil {
		return nil, 0, transportErr(url, "resolving latest event number", err)
	}
	return rows, number, nil
}

// resolveEventNumber reads the event number from the results header, where
// the last span of the h3 holds text like "#479".
func resolveEventNumber(doc *goquery.Document) (int, error) {
	span := doc.Find("div.Results-header h3 span").Last()
	if span.Length() == 0 {
		return 0, fmt.Errorf("results header span not found")
	}

	text := strings.TrimSpace(span.Text())
	numberText := strings.TrimPrefix(text, "#")
	if numberText == text {
		return 0, fmt.Errorf("header span %q does not look like an event number", text)
	}

	number, err := strconv.Atoi(numberText)
	if err != nil {
		return 0, fmt.Errorf("header span %q does not hold a number: %w", text, err)
	}
	if number < 1 {
		return 0, fmt.Errorf("header span %q resolves to non-positive event number", text)
	}
	return number, nil
}
