package repository

import (
	"field-marketing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a team member by ID, scoped to its owner
func (r *TeamMemberRepository) GetByID(userID string, id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByUser retrieves an owner's team members, newest first.
// A non-positive limit returns all of them.
func (r *TeamMemberRepository) ListByUser(userID string, limit int) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := withLimit(r.db.Where("user_id = ?", userID), limit).
		Order("created_at DESC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountByUser counts an owner's team members
func (r *TeamMemberRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.TeamMember{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func withLimit(query *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return query.Limit(limit)
	}
	return query
}
