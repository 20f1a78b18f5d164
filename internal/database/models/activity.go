package models

import (
	"github.com/google/uuid"
)

// TeamActivity is a denormalized activity log entry. RelatedID is not
// enforced against the record it points to.
type TeamActivity struct {
	OwnedModel
	TeamMemberID *uuid.UUID   `json:"team_member_id,omitempty" gorm:"type:uuid;index"`
	ActivityType ActivityType `json:"activity_type" gorm:"type:varchar(20);not null"`
	Title        string       `json:"title" gorm:"size:300;not null"`
	Description  *string      `json:"description,omitempty" gorm:"type:text"`
	RelatedID    *uuid.UUID   `json:"related_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for TeamActivity
func (TeamActivity) TableName() string {
	return "team_activities"
}
