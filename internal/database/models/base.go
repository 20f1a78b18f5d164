package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedModel provides the fields shared by every record a signed-in user owns.
// UserID is the owner key issued by the auth layer ("<provider>:<id>").
type OwnedModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:80;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate sets a random identifier if the caller did not supply one
func (base *OwnedModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
