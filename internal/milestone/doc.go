// Package milestone implements milestone detection over parkrun results.
//
// A milestone is a configured total-participation count (25th, 50th, 100th
// run and so on) that triggers a celebratory report. The Classifier decides
// whether a single finisher row is about to cross a tracked milestone at the
// event the row belongs to. The Scanner walks a bounded number of past events
// backward from the latest one, classifies every row, and merges the
// qualifying rows into a de-duplicated collection in discovery order.
//
// Thresholds are injected, never global: tests and other countries' series
// run with alternative sets.
package milestone
