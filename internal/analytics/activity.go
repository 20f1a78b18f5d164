package analytics

import (
	"sort"
	"time"

	"field-marketing-backend/internal/database/models"
)

const dayLabelLayout = "Monday, January 2, 2006"

// ActivityGroup holds the activities of one local calendar day, newest first
type ActivityGroup struct {
	Date       string                `json:"date"`
	Label      string                `json:"label"`
	Count      int                   `json:"count"`
	Activities []models.TeamActivity `json:"activities"`
}

// GroupActivitiesByDay sorts activities newest first and groups them by the
// local calendar date of CreatedAt. The most recent day comes first.
func GroupActivitiesByDay(activities []models.TeamActivity, loc *time.Location) []ActivityGroup {
	loc = orUTC(loc)

	sorted := make([]models.TeamActivity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	groups := make([]ActivityGroup, 0)
	index := make(map[string]int)
	for _, a := range sorted {
		key := DateKey(a.CreatedAt, loc)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ActivityGroup{
				Date:  key,
				Label: a.CreatedAt.In(loc).Format(dayLabelLayout),
			})
		}
		groups[i].Activities = append(groups[i].Activities, a)
		groups[i].Count++
	}
	return groups
}
