package models

import (
	"strings"
	"time"
)

// TeamMember represents a field marketing representative tracked on the dashboard
type TeamMember struct {
	OwnedModel
	Name            string       `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email           string       `json:"email" gorm:"size:255;not null" validate:"required,email,max=255"`
	Role            string       `json:"role" gorm:"size:100;not null" validate:"required,max=100"`
	Status          MemberStatus `json:"status" gorm:"type:varchar(20);not null;default:'offline'"`
	LastLocationLat *float64     `json:"last_location_lat,omitempty"`
	LastLocationLng *float64     `json:"last_location_lng,omitempty"`
	LastSeen        time.Time    `json:"last_seen"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// FirstName returns the first word of the member's name
func (m TeamMember) FirstName() string {
	fields := strings.Fields(m.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// HasLocation reports whether both last known coordinates are present
func (m TeamMember) HasLocation() bool {
	return m.LastLocationLat != nil && m.LastLocationLng != nil
}
