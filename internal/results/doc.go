// Package results provides HTTP fetching and HTML parsing for parkrun
// results pages.
//
// The package implements the scan's single network-facing contract: fetch
// the participant rows of one event of one series, either the most recent
// published event or a specific event number. Rows are extracted from the
// published results table (tr.Results-table-row attributes) and the latest
// event number is resolved from the results header. Every retrieval or
// structural failure surfaces as a TransportError; there are no retries.
package results
