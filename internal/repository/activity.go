package repository

import (
	"field-marketing-backend/internal/database/models"

	"gorm.io/gorm"
)

// ActivityRepository handles database operations for the team activity log
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an entry to the activity log
func (r *ActivityRepository) Create(activity *models.TeamActivity) error {
	return r.db.Create(activity).Error
}

// ListByUser retrieves an owner's most recent activities
func (r *ActivityRepository) ListByUser(userID string, limit int) ([]models.TeamActivity, error) {
	var activities []models.TeamActivity
	err := withLimit(r.db.Where("user_id = ?", userID), limit).
		Order("created_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
