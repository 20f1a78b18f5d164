package repository

import (
	"field-marketing-backend/internal/database/models"

	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// ListByUser retrieves an owner's leads, newest first
func (r *LeadRepository) ListByUser(userID string, limit int) ([]models.Lead, error) {
	var leads []models.Lead
	err := withLimit(r.db.Where("user_id = ?", userID), limit).
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}
