package service

import (
	"time"

	"field-marketing-backend/internal/analytics"
	"field-marketing-backend/internal/database/models"
	"field-marketing-backend/internal/workspace"
)

// TeamView is the team locations tab
type TeamView struct {
	Members   []models.TeamMember       `json:"members"`
	Status    analytics.StatusPartition `json:"status"`
	Located   int                       `json:"located"`
	Unlocated int                       `json:"unlocated"`
}

// VisitsView is the check-ins tab
type VisitsView struct {
	Visits     []models.Visit `json:"visits"`
	Total      int            `json:"total"`
	Today      int            `json:"today"`
	WithPhotos int            `json:"with_photos"`
}

// PipelineView is the lead management board
type PipelineView struct {
	Columns []analytics.PipelineColumn `json:"columns"`
	Metrics analytics.PipelineMetrics  `json:"metrics"`
}

// ActivityFeed is the grouped activity log
type ActivityFeed struct {
	Groups []analytics.ActivityGroup `json:"groups"`
	Total  int                       `json:"total"`
}

func buildTeamView(members []models.TeamMember) *TeamView {
	view := &TeamView{
		Members: nonNilSlice(members),
		Status:  analytics.PartitionByStatus(members),
	}
	for _, m := range members {
		if m.HasLocation() {
			view.Located++
		}
	}
	view.Unlocated = len(members) - view.Located
	return view
}

func buildVisitsView(visits []models.Visit, now time.Time, loc *time.Location) *VisitsView {
	view := &VisitsView{
		Visits: nonNilSlice(visits),
		Total:  len(visits),
		Today:  analytics.CountVisitsToday(visits, now, loc),
	}
	for _, v := range visits {
		if v.HasPhoto() {
			view.WithPhotos++
		}
	}
	return view
}

func buildPipelineView(leads []models.Lead) *PipelineView {
	return &PipelineView{
		Columns: analytics.PipelineColumns(leads),
		Metrics: analytics.PipelineValue(leads),
	}
}

func buildActivityFeed(activities []models.TeamActivity, loc *time.Location) *ActivityFeed {
	return &ActivityFeed{
		Groups: analytics.GroupActivitiesByDay(activities, loc),
		Total:  len(activities),
	}
}

// renderTab builds the payload of one dashboard tab from loaded collections
func renderTab(tab workspace.Tab, c workspace.Collections, now time.Time, loc *time.Location) interface{} {
	switch tab {
	case workspace.TabTeam:
		return buildTeamView(c.TeamMembers)
	case workspace.TabVisits:
		return buildVisitsView(c.Visits, now, loc)
	case workspace.TabLeads:
		return buildPipelineView(c.Leads)
	case workspace.TabAnalytics:
		report := analytics.Report(c.TeamMembers, c.Visits, c.Leads, now, loc)
		return &report
	case workspace.TabActivity:
		return buildActivityFeed(c.Activities, loc)
	default:
		overview := analytics.Overview(c.TeamMembers, c.Visits, c.Leads, now, loc)
		return &overview
	}
}

func nonNilSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
