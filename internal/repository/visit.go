package repository

import (
	"field-marketing-backend/internal/database/models"

	"gorm.io/gorm"
)

// VisitRepository handles database operations for visit check-ins
type VisitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// Create creates a new visit
func (r *VisitRepository) Create(visit *models.Visit) error {
	return r.db.Create(visit).Error
}

// ListByUser retrieves an owner's visits ordered by visit time, most recent first
func (r *VisitRepository) ListByUser(userID string, limit int) ([]models.Visit, error) {
	var visits []models.Visit
	err := withLimit(r.db.Where("user_id = ?", userID), limit).
		Order("visit_time DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
