package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Money travels as a JSON number, the dashboard charts consume it directly
	decimal.MarshalJSONWithoutQuotes = true
}

// Lead is a sales opportunity moving through the pipeline
type Lead struct {
	OwnedModel
	TeamMemberID   *uuid.UUID          `json:"team_member_id,omitempty" gorm:"type:uuid;index"`
	CompanyName    string              `json:"company_name" gorm:"size:200;not null"`
	ContactName    string              `json:"contact_name" gorm:"size:200;not null"`
	ContactEmail   *string             `json:"contact_email,omitempty" gorm:"size:255"`
	ContactPhone   *string             `json:"contact_phone,omitempty" gorm:"size:50"`
	Status         LeadStatus          `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	Priority       LeadPriority        `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	Source         *string             `json:"source,omitempty" gorm:"size:100"`
	Notes          *string             `json:"notes,omitempty" gorm:"type:text"`
	EstimatedValue decimal.NullDecimal `json:"estimated_value" gorm:"type:numeric(14,2)"`
	FollowUpDate   *time.Time          `json:"follow_up_date,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// Value returns the estimated value, treating a missing value as zero
func (l Lead) Value() decimal.Decimal {
	if !l.EstimatedValue.Valid {
		return decimal.Zero
	}
	return l.EstimatedValue.Decimal
}
