package digest

import (
	"fmt"
	"sort"
	"strings"
)

// BandClass buckets a fragment length into the size range it would run at
// on an agarose gel
func BandClass(length int) string {
	switch {
	case length >= 10000:
		return "very large"
	case length >= 5000:
		return "large"
	case length >= 1000:
		return "medium"
	case length >= 500:
		return "small"
	}
	return "very small"
}

// PredictBands lists fragment lengths largest first with their size class,
// the order bands would appear in a gel lane
func PredictBands(lengths []int) string {
	if len(lengths) == 0 {
		return "No fragments"
	}

	sorted := append([]int{}, lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	lines := []string{"Predicted bands:"}
	for i, size := range sorted {
		lines = append(lines, fmt.Sprintf("  %d. %6d bp  (%s)", i+1, size, BandClass(size)))
	}

	return strings.Join(lines, "\n")
}
