package models

import "time"

// WorkspaceProvision marks that demo data was provisioned for an owner.
// The primary key makes the claim atomic.
type WorkspaceProvision struct {
	UserID        string    `json:"user_id" gorm:"primaryKey;size:80"`
	SeedVersion   int       `json:"seed_version" gorm:"not null;default:1"`
	ProvisionedAt time.Time `json:"provisioned_at"`
}

// TableName returns the table name for WorkspaceProvision
func (WorkspaceProvision) TableName() string {
	return "workspace_provisions"
}
