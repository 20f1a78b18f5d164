package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit is a single field check-in. Location is mandatory, the photo is optional.
type Visit struct {
	OwnedModel
	TeamMemberID uuid.UUID `json:"team_member_id" gorm:"type:uuid;not null;index"`
	LocationName string    `json:"location_name" gorm:"size:200;not null"`
	LocationLat  float64   `json:"location_lat" gorm:"not null"`
	LocationLng  float64   `json:"location_lng" gorm:"not null"`
	PhotoURL     *string   `json:"photo_url,omitempty" gorm:"size:500"`
	Notes        *string   `json:"notes,omitempty" gorm:"type:text"`
	VisitTime    time.Time `json:"visit_time" gorm:"not null;index"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "visits"
}

// HasPhoto reports whether the check-in carries a photo
func (v Visit) HasPhoto() bool {
	return v.PhotoURL != nil && *v.PhotoURL != ""
}
