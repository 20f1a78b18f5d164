package service

import (
	"time"

	"field-marketing-backend/internal/analytics"
	"field-marketing-backend/internal/workspace"
)

// DashboardService computes the overview and analytics tabs
type DashboardService struct {
	loader *workspace.Loader
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(loader *workspace.Loader) *DashboardService {
	return &DashboardService{loader: loader}
}

// Overview returns the dashboard tab for the owner
func (s *DashboardService) Overview(ownerID string, now time.Time, loc *time.Location) (*analytics.OverviewSummary, error) {
	c, err := s.loader.Fetch(ownerID)
	if err != nil {
		return nil, err
	}
	summary := analytics.Overview(c.TeamMembers, c.Visits, c.Leads, now, loc)
	return &summary, nil
}

// Analytics returns the analytics tab for the owner
func (s *DashboardService) Analytics(ownerID string, now time.Time, loc *time.Location) (*analytics.AnalyticsReport, error) {
	c, err := s.loader.Fetch(ownerID)
	if err != nil {
		return nil, err
	}
	report := analytics.Report(c.TeamMembers, c.Visits, c.Leads, now, loc)
	return &report, nil
}
