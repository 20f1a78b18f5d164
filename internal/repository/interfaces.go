package repository

import (
	"field-marketing-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(userID string, id uuid.UUID) (*models.TeamMember, error)
	ListByUser(userID string, limit int) ([]models.TeamMember, error)
	CountByUser(userID string) (int64, error)
}

// VisitRepositoryInterface defines the interface for visit repository operations
type VisitRepositoryInterface interface {
	Create(visit *models.Visit) error
	ListByUser(userID string, limit int) ([]models.Visit, error)
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	ListByUser(userID string, limit int) ([]models.Lead, error)
}

// ActivityRepositoryInterface defines the interface for activity log operations
type ActivityRepositoryInterface interface {
	Create(activity *models.TeamActivity) error
	ListByUser(userID string, limit int) ([]models.TeamActivity, error)
}

// ProvisionRepositoryInterface defines the interface for demo data provisioning
type ProvisionRepositoryInterface interface {
	ProvisionOnce(userID string, version int, seed *DemoSeed) (bool, error)
	GetByUser(userID string) (*models.WorkspaceProvision, error)
}
