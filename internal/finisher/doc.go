// Package finisher provides the model for one row of a parkrun results page.
//
// A Finisher carries the participant's published run count, display name and
// age-group code. The run count is the number of parkruns completed before the
// event the row belongs to, so the count after crossing the finish line is
// Runs+1. Identity for de-duplication across scanned events is the
// (Runs, Name, AgeGroup) triple exposed as a comparable Key.
package finisher
