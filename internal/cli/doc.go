// Package cli implements the command-line interface for parkrun-milestones.
//
// The cli package provides the Cobra-based CLI that runs a milestone scan:
// it layers configuration, walks recent result pages backward from the
// latest event, filters the celebrants, renders text or JSON output, and
// optionally archives the report for the announcement tooling.
package cli
