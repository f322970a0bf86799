// Package report assembles and persists the outcome of a milestone scan.
//
// A report captures which finishers are approaching a milestone at one
// location, together with enough scan metadata to interpret the list later.
// Reports are stored as JSON, one file per location (report_<location>.json).
// The default storage location is ~/.parkrun-milestones/.
package report
