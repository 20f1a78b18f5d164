package service

import (
	"field-marketing-backend/internal/database/models"
	"field-marketing-backend/internal/repository"
	"field-marketing-backend/internal/workspace"
)

// RepositorySource reads the four workspace collections from the database
type RepositorySource struct {
	members    repository.TeamMemberRepositoryInterface
	visits     repository.VisitRepositoryInterface
	leads      repository.LeadRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

var _ workspace.Source = (*RepositorySource)(nil)

// NewRepositorySource creates a workspace source over the repositories
func NewRepositorySource(
	members repository.TeamMemberRepositoryInterface,
	visits repository.VisitRepositoryInterface,
	leads repository.LeadRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
) *RepositorySource {
	return &RepositorySource{members: members, visits: visits, leads: leads, activities: activities}
}

func (s *RepositorySource) ListTeamMembers(ownerID string) ([]models.TeamMember, error) {
	return s.members.ListByUser(ownerID, 0)
}

func (s *RepositorySource) ListVisits(ownerID string) ([]models.Visit, error) {
	return s.visits.ListByUser(ownerID, 0)
}

func (s *RepositorySource) ListLeads(ownerID string) ([]models.Lead, error) {
	return s.leads.ListByUser(ownerID, 0)
}

func (s *RepositorySource) ListActivities(ownerID string, limit int) ([]models.TeamActivity, error) {
	return s.activities.ListByUser(ownerID, limit)
}
