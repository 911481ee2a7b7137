package record

import (
	"golang.org/x/exp/slices"
)

// SortByRecency orders records by timestamp descending, in place.
// Records without a timestamp go last and keep their relative order.
func SortByRecency(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		switch {
		case !a.HasTimestamp() && !b.HasTimestamp():
			return 0
		case !a.HasTimestamp():
			return 1
		case !b.HasTimestamp():
			return -1
		}
		return b.Timestamp.Compare(*a.Timestamp)
	})
}
