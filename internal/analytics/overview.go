package analytics

import (
	"time"

	"field-marketing-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

// RecentLimit is how many members and visits the overview previews
const RecentLimit = 5

// OverviewSummary backs the dashboard tab
type OverviewSummary struct {
	ActiveMembers  int                 `json:"active_members"`
	TotalMembers   int                 `json:"total_members"`
	ActiveRatio    float64             `json:"active_ratio"`
	TodayVisits    int                 `json:"today_visits"`
	QualifiedLeads int                 `json:"qualified_leads"`
	TotalLeadValue decimal.Decimal     `json:"total_lead_value"`
	Status         StatusPartition     `json:"status"`
	RecentMembers  []models.TeamMember `json:"recent_members"`
	RecentVisits   []models.Visit      `json:"recent_visits"`
}

// Overview summarizes the already ordered collections. The previews are the
// first RecentLimit entries of members and visits as given.
func Overview(members []models.TeamMember, visits []models.Visit, leads []models.Lead, now time.Time, loc *time.Location) OverviewSummary {
	status := PartitionByStatus(members)
	return OverviewSummary{
		ActiveMembers:  status.Active,
		TotalMembers:   status.Total,
		ActiveRatio:    status.ActiveRatio(),
		TodayVisits:    CountVisitsToday(visits, now, loc),
		QualifiedLeads: QualifiedLeadCount(leads),
		TotalLeadValue: PipelineValue(leads).TotalValue,
		Status:         status,
		RecentMembers:  head(members, RecentLimit),
		RecentVisits:   head(visits, RecentLimit),
	}
}

// AnalyticsReport backs the analytics tab
type AnalyticsReport struct {
	Pipeline         PipelineMetrics     `json:"pipeline"`
	ClosedValueShare float64             `json:"closed_value_share"`
	TotalVisits      int                 `json:"total_visits"`
	PhotoVisits      int                 `json:"photo_visits"`
	VisitsByDay      []DayBucket         `json:"visits_by_day"`
	LeadStatus       []StatusSlice       `json:"lead_status"`
	TeamPerformance  []MemberPerformance `json:"team_performance"`
	TopPerformers    []MemberPerformance `json:"top_performers"`
}

// Report computes every figure shown on the analytics tab
func Report(members []models.TeamMember, visits []models.Visit, leads []models.Lead, now time.Time, loc *time.Location) AnalyticsReport {
	pipeline := PipelineValue(leads)
	perf := TeamPerformance(members, visits, leads)

	photos := 0
	for _, v := range visits {
		if v.HasPhoto() {
			photos++
		}
	}

	return AnalyticsReport{
		Pipeline:         pipeline,
		ClosedValueShare: percentOf(pipeline.ClosedValue, pipeline.TotalValue),
		TotalVisits:      len(visits),
		PhotoVisits:      photos,
		VisitsByDay:      DailyVisitHistogram(visits, now, loc),
		LeadStatus:       LeadStatusDistribution(leads),
		TeamPerformance:  perf,
		TopPerformers:    TopPerformers(perf, TopPerformersLimit),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
