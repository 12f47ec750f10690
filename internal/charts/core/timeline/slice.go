// Package timeline sorts sales records by date and slices arbitrary
// [start, end] windows out of the sorted series via binary search.
package timeline

import (
	"sort"

	"sales-insights-service/internal/charts/core/domain"
)

// Sentinel bounds for open-ended windows. Date keys are YYYY-MM-DD
// strings, so lexicographic order is chronological order.
const (
	MinDateKey = "0001-01-01"
	MaxDateKey = "9999-12-31"
)

// SortByDate returns the records sorted ascending by SalesDate (stable,
// ties keep input order) together with the parallel date-key array the
// binary searches run over. Done once per snapshot.
func SortByDate(records []domain.SalesRecord) ([]domain.SalesRecord, []string) {
	sorted := make([]domain.SalesRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SalesDate < sorted[j].SalesDate
	})

	dates := make([]string, len(sorted))
	for i := range sorted {
		dates[i] = sorted[i].SalesDate
	}
	return sorted, dates
}

// LowerBound returns the first index whose key is >= target.
func LowerBound(dates []string, target string) int {
	lo, hi := 0, len(dates)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if dates[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the first index whose key is > target.
func UpperBound(dates []string, target string) int {
	lo, hi := 0, len(dates)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if dates[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Slice returns the contiguous subrange of sorted whose dates fall in the
// inclusive [start, end] window. Empty start or end leaves that side
// open. Two binary searches, O(log n); the no-window case short-circuits
// to the full collection.
func Slice(sorted []domain.SalesRecord, dates []string, start, end string) []domain.SalesRecord {
	if start == "" && end == "" {
		return sorted
	}
	if start == "" {
		start = MinDateKey
	}
	if end == "" {
		end = MaxDateKey
	}

	i := LowerBound(dates, start)
	j := UpperBound(dates, end)
	if j < i {
		return nil
	}
	return sorted[i:j]
}
