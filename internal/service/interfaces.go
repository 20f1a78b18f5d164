package service

import (
	"context"
	"time"

	"field-marketing-backend/internal/analytics"
	"field-marketing-backend/internal/auth"
	"field-marketing-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamMemberServiceInterface defines the interface for the team view
type TeamMemberServiceInterface interface {
	List(ownerID string) (*TeamView, error)
	Create(ctx context.Context, ownerID string, req *CreateTeamMemberRequest) (*models.TeamMember, error)
}

// VisitServiceInterface defines the interface for field check-ins
type VisitServiceInterface interface {
	List(ownerID string, now time.Time, loc *time.Location) (*VisitsView, error)
	CheckIn(ctx context.Context, ownerID string, req *CheckInRequest, photo *PhotoUpload) (*models.Visit, error)
}

// LeadServiceInterface defines the interface for lead management
type LeadServiceInterface interface {
	List(ownerID string) ([]models.Lead, error)
	Pipeline(ownerID string) (*PipelineView, error)
	Create(ctx context.Context, ownerID string, req *CreateLeadRequest) (*models.Lead, error)
}

// ActivityServiceInterface defines the interface for the activity feed
type ActivityServiceInterface interface {
	Feed(ownerID string, limit int, loc *time.Location) (*ActivityFeed, error)
}

// DashboardServiceInterface defines the interface for the overview and analytics views
type DashboardServiceInterface interface {
	Overview(ownerID string, now time.Time, loc *time.Location) (*analytics.OverviewSummary, error)
	Analytics(ownerID string, now time.Time, loc *time.Location) (*analytics.AnalyticsReport, error)
}

// WorkspaceServiceInterface defines the interface for the signed-in session
type WorkspaceServiceInterface interface {
	Session(ctx context.Context, claims *auth.AuthClaims, tab string, now time.Time, loc *time.Location) (*SessionResponse, error)
	View(ctx context.Context, claims *auth.AuthClaims, tab string, now time.Time, loc *time.Location) (*ViewResponse, error)
}

// ProvisioningServiceInterface defines the interface for first sign-in demo data
type ProvisioningServiceInterface interface {
	EnsureDemoData(ctx context.Context, ownerID string) (bool, error)
}

// DirectoryServiceInterface defines the interface for the people directory
type DirectoryServiceInterface interface {
	SearchPeople(query string) ([]DirectoryPerson, error)
}
