package finisher

import "sort"

// SortByRunsAscending orders rows by run count, lowest first. The sort is
// stable: rows with equal run counts keep their original published order.
func SortByRunsAscending(rows []Finisher) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Runs < rows[j].Runs
	})
}

// SortByRunsDescending orders rows by run count, highest first, for display.
// Stable for the same reason as SortByRunsAscending.
func SortByRunsDescending(rows []Finisher) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Runs > rows[j].Runs
	})
}
