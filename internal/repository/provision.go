package repository

import (
	"time"

	"field-marketing-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DemoSeed is the first-run dataset for a new workspace. Cross references
// (visit and lead member ids) must be assigned by the caller before insert.
type DemoSeed struct {
	TeamMembers []models.TeamMember
	Visits      []models.Visit
	Leads       []models.Lead
	Activities  []models.TeamActivity
}

// ProvisionRepository records one-time demo provisioning per owner
type ProvisionRepository struct {
	db *gorm.DB
}

// NewProvisionRepository creates a new provisioning repository
func NewProvisionRepository(db *gorm.DB) *ProvisionRepository {
	return &ProvisionRepository{db: db}
}

// ProvisionOnce claims the owner's provisioning row and inserts the seed in
// the same transaction. The seed is only written when the claim is new and
// the owner has no team members yet. It reports whether rows were seeded.
func (r *ProvisionRepository) ProvisionOnce(userID string, version int, seed *DemoSeed) (bool, error) {
	seeded := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		claim := &models.WorkspaceProvision{
			UserID:        userID,
			SeedVersion:   version,
			ProvisionedAt: time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(claim)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var existing int64
		if err := tx.Model(&models.TeamMember{}).Where("user_id = ?", userID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 || seed == nil {
			return nil
		}

		if len(seed.TeamMembers) > 0 {
			if err := tx.Create(&seed.TeamMembers).Error; err != nil {
				return err
			}
		}
		if len(seed.Visits) > 0 {
			if err := tx.Create(&seed.Visits).Error; err != nil {
				return err
			}
		}
		if len(seed.Leads) > 0 {
			if err := tx.Create(&seed.Leads).Error; err != nil {
				return err
			}
		}
		if len(seed.Activities) > 0 {
			if err := tx.Create(&seed.Activities).Error; err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

// GetByUser retrieves the provisioning record of an owner
func (r *ProvisionRepository) GetByUser(userID string) (*models.WorkspaceProvision, error) {
	var provision models.WorkspaceProvision
	err := r.db.First(&provision, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &provision, nil
}
