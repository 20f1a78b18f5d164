package testutils

import (
	"time"

	"field-marketing-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestOwnerID is the owner key used by factories unless overridden
const TestOwnerID = "github:1001"

func ownedModel(userID string) models.OwnedModel {
	return models.OwnedModel{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	lat, lng := 40.7128, -74.0060
	return &models.TeamMember{
		OwnedModel:      ownedModel(TestOwnerID),
		Name:            "Sarah Johnson",
		Email:           "sarah@company.com",
		Role:            "Senior Marketing Rep",
		Status:          models.MemberStatusActive,
		LastLocationLat: &lat,
		LastLocationLng: &lng,
		LastSeen:        time.Now(),
	}
}

// WithOwner sets a custom owner for the team member
func (f *TeamMemberFactory) WithOwner(userID string) *models.TeamMember {
	m := f.Create()
	m.UserID = userID
	return m
}

// WithName sets a custom name for the team member
func (f *TeamMemberFactory) WithName(name string) *models.TeamMember {
	m := f.Create()
	m.Name = name
	return m
}

// WithStatus sets a custom status for the team member
func (f *TeamMemberFactory) WithStatus(status models.MemberStatus) *models.TeamMember {
	m := f.Create()
	m.Status = status
	return m
}

// VisitFactory provides methods to create test Visit data
type VisitFactory struct{}

// NewVisitFactory creates a new VisitFactory
func NewVisitFactory() *VisitFactory {
	return &VisitFactory{}
}

// Create creates a test Visit with default values
func (f *VisitFactory) Create() *models.Visit {
	notes := "Met with procurement team"
	return &models.Visit{
		OwnedModel:   ownedModel(TestOwnerID),
		TeamMemberID: uuid.New(),
		LocationName: "TechCorp Headquarters",
		LocationLat:  40.7128,
		LocationLng:  -74.0060,
		Notes:        &notes,
		VisitTime:    time.Now(),
	}
}

// WithMember sets the team member who made the visit
func (f *VisitFactory) WithMember(member *models.TeamMember) *models.Visit {
	v := f.Create()
	v.TeamMemberID = member.ID
	v.UserID = member.UserID
	return v
}

// WithVisitTime sets a custom visit time
func (f *VisitFactory) WithVisitTime(at time.Time) *models.Visit {
	v := f.Create()
	v.VisitTime = at
	return v
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	email := "david@techcorp.com"
	source := "Field Visit"
	return &models.Lead{
		OwnedModel:     ownedModel(TestOwnerID),
		CompanyName:    "TechCorp Solutions",
		ContactName:    "David Wilson",
		ContactEmail:   &email,
		Status:         models.LeadStatusNew,
		Priority:       models.LeadPriorityMedium,
		Source:         &source,
		EstimatedValue: decimal.NewNullDecimal(decimal.NewFromInt(50000)),
		UpdatedAt:      time.Now(),
	}
}

// WithStatus sets a custom pipeline stage
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	l := f.Create()
	l.Status = status
	return l
}

// WithValue sets the estimated value, nil clears it
func (f *LeadFactory) WithValue(value *int64) *models.Lead {
	l := f.Create()
	if value == nil {
		l.EstimatedValue = decimal.NullDecimal{}
	} else {
		l.EstimatedValue = decimal.NewNullDecimal(decimal.NewFromInt(*value))
	}
	return l
}

// WithMember assigns the lead to a team member
func (f *LeadFactory) WithMember(member *models.TeamMember) *models.Lead {
	l := f.Create()
	id := member.ID
	l.TeamMemberID = &id
	l.UserID = member.UserID
	return l
}

// ActivityFactory provides methods to create test TeamActivity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a test TeamActivity with default values
func (f *ActivityFactory) Create() *models.TeamActivity {
	return &models.TeamActivity{
		OwnedModel:   ownedModel(TestOwnerID),
		ActivityType: models.ActivityTypeTeamUpdate,
		Title:        "New team member: Sarah Johnson",
	}
}

// WithCreatedAt sets a custom creation time
func (f *ActivityFactory) WithCreatedAt(at time.Time) *models.TeamActivity {
	a := f.Create()
	a.CreatedAt = at
	return a
}

// FactorySet provides access to all factories
type FactorySet struct {
	TeamMember *TeamMemberFactory
	Visit      *VisitFactory
	Lead       *LeadFactory
	Activity   *ActivityFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		TeamMember: NewTeamMemberFactory(),
		Visit:      NewVisitFactory(),
		Lead:       NewLeadFactory(),
		Activity:   NewActivityFactory(),
	}
}
