package analytics

import (
	"time"

	"field-marketing-backend/internal/database/models"
)

// HistogramDays is the width of the daily visit histogram, today included
const HistogramDays = 7

// DayBucket is one day of the visit histogram
type DayBucket struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Visits int    `json:"visits"`
}

// DailyVisitHistogram returns one bucket per day for the last seven local
// calendar days, oldest first. Days without visits are kept with a zero count.
func DailyVisitHistogram(visits []models.Visit, now time.Time, loc *time.Location) []DayBucket {
	loc = orUTC(loc)

	counts := make(map[string]int, HistogramDays)
	for _, v := range visits {
		counts[DateKey(v.VisitTime, loc)]++
	}

	today := StartOfDay(now, loc)
	buckets := make([]DayBucket, 0, HistogramDays)
	for i := HistogramDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(dateKeyLayout)
		buckets = append(buckets, DayBucket{
			Date:   key,
			Label:  day.Format("Mon"),
			Visits: counts[key],
		})
	}
	return buckets
}

// CountVisitsToday counts visits whose visit time is on today's local date
func CountVisitsToday(visits []models.Visit, now time.Time, loc *time.Location) int {
	count := 0
	for _, v := range visits {
		if IsToday(v.VisitTime, now, loc) {
			count++
		}
	}
	return count
}
