// Package analytics derives dashboard summaries from already-loaded
// collections. Every function is pure and total: empty input yields zero
// values, missing optional numbers count as zero and missing optional
// references are left out of their buckets.
package analytics

import "time"

const dateKeyLayout = "2006-01-02"

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// DateKey returns the calendar date of ts in loc as YYYY-MM-DD
func DateKey(ts time.Time, loc *time.Location) string {
	return ts.In(orUTC(loc)).Format(dateKeyLayout)
}

// StartOfDay returns local midnight of the day containing ts
func StartOfDay(ts time.Time, loc *time.Location) time.Time {
	local := ts.In(orUTC(loc))
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, local.Location())
}

// IsToday reports whether ts falls on the same local calendar date as now.
// It is evaluated on every call; nothing is cached.
func IsToday(ts, now time.Time, loc *time.Location) bool {
	return DateKey(ts, loc) == DateKey(now, loc)
}
