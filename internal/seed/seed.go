// Package seed parses demo workspace datasets and turns them into owned
// records ready to insert.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"field-marketing-backend/internal/database/models"
	"field-marketing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Dataset is the YAML shape of a demo workspace
type Dataset struct {
	Version     int          `yaml:"version"`
	TeamMembers []MemberData `yaml:"team_members"`
	Visits      []VisitData  `yaml:"visits"`
	Leads       []LeadData   `yaml:"leads"`
}

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type MemberData struct {
	Key          string        `yaml:"key"`
	Name         string        `yaml:"name"`
	Email        string        `yaml:"email"`
	Role         string        `yaml:"role"`
	Status       string        `yaml:"status"`
	LastLocation *Coordinates  `yaml:"last_location,omitempty"`
	LastSeenAgo  time.Duration `yaml:"last_seen_ago"`
}

type VisitData struct {
	Member       string        `yaml:"member"`
	LocationName string        `yaml:"location_name"`
	Lat          float64       `yaml:"lat"`
	Lng          float64       `yaml:"lng"`
	Notes        string        `yaml:"notes,omitempty"`
	PhotoURL     string        `yaml:"photo_url,omitempty"`
	VisitTimeAgo time.Duration `yaml:"visit_time_ago"`
}

type LeadData struct {
	Member         string `yaml:"member,omitempty"`
	CompanyName    string `yaml:"company_name"`
	ContactName    string `yaml:"contact_name"`
	ContactEmail   string `yaml:"contact_email,omitempty"`
	ContactPhone   string `yaml:"contact_phone,omitempty"`
	Status         string `yaml:"status"`
	Priority       string `yaml:"priority"`
	Source         string `yaml:"source,omitempty"`
	EstimatedValue string `yaml:"estimated_value,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

// Demo returns the built-in sample workspace
func Demo() (*Dataset, error) {
	return Parse(demoYAML)
}

// Parse decodes and checks a dataset
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	if ds.Version == 0 {
		ds.Version = 1
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	keys := make(map[string]bool, len(ds.TeamMembers))
	for _, m := range ds.TeamMembers {
		if m.Key == "" || m.Name == "" || m.Email == "" {
			return fmt.Errorf("seed team member needs key, name and email")
		}
		if keys[m.Key] {
			return fmt.Errorf("duplicate seed team member key %q", m.Key)
		}
		if !models.MemberStatus(m.Status).IsValid() {
			return fmt.Errorf("seed team member %q has unknown status %q", m.Key, m.Status)
		}
		keys[m.Key] = true
	}
	for _, v := range ds.Visits {
		if !keys[v.Member] {
			return fmt.Errorf("seed visit %q references unknown member %q", v.LocationName, v.Member)
		}
	}
	for _, l := range ds.Leads {
		if l.Member != "" && !keys[l.Member] {
			return fmt.Errorf("seed lead %q references unknown member %q", l.CompanyName, l.Member)
		}
		if !models.LeadStatus(l.Status).IsValid() {
			return fmt.Errorf("seed lead %q has unknown status %q", l.CompanyName, l.Status)
		}
		if !models.LeadPriority(l.Priority).IsValid() {
			return fmt.Errorf("seed lead %q has unknown priority %q", l.CompanyName, l.Priority)
		}
		if l.EstimatedValue != "" {
			if _, err := decimal.NewFromString(l.EstimatedValue); err != nil {
				return fmt.Errorf("seed lead %q has invalid estimated value: %w", l.CompanyName, err)
			}
		}
	}
	return nil
}

// Build materializes the dataset for ownerID. Identifiers are assigned here
// so visits and leads can reference their members. Records listed first get
// the newest creation time.
func (ds *Dataset) Build(ownerID string, now time.Time) *repository.DemoSeed {
	out := &repository.DemoSeed{}
	memberIDs := make(map[string]uuid.UUID, len(ds.TeamMembers))

	for i, m := range ds.TeamMembers {
		member := models.TeamMember{
			OwnedModel: owned(ownerID, now, i),
			Name:       m.Name,
			Email:      m.Email,
			Role:       m.Role,
			Status:     models.MemberStatus(m.Status),
			LastSeen:   now.Add(-m.LastSeenAgo),
		}
		if m.LastLocation != nil {
			lat, lng := m.LastLocation.Lat, m.LastLocation.Lng
			member.LastLocationLat = &lat
			member.LastLocationLng = &lng
		}
		memberIDs[m.Key] = member.ID
		out.TeamMembers = append(out.TeamMembers, member)
	}

	for i, v := range ds.Visits {
		out.Visits = append(out.Visits, models.Visit{
			OwnedModel:   owned(ownerID, now, i),
			TeamMemberID: memberIDs[v.Member],
			LocationName: v.LocationName,
			LocationLat:  v.Lat,
			LocationLng:  v.Lng,
			Notes:        optional(v.Notes),
			PhotoURL:     optional(v.PhotoURL),
			VisitTime:    now.Add(-v.VisitTimeAgo),
		})
	}

	for i, l := range ds.Leads {
		lead := models.Lead{
			OwnedModel:   owned(ownerID, now, i),
			CompanyName:  l.CompanyName,
			ContactName:  l.ContactName,
			ContactEmail: optional(l.ContactEmail),
			ContactPhone: optional(l.ContactPhone),
			Status:       models.LeadStatus(l.Status),
			Priority:     models.LeadPriority(l.Priority),
			Source:       optional(l.Source),
			Notes:        optional(l.Notes),
			UpdatedAt:    now,
		}
		if id, ok := memberIDs[l.Member]; ok {
			lead.TeamMemberID = &id
		}
		if l.EstimatedValue != "" {
			// checked in validate
			value := decimal.RequireFromString(l.EstimatedValue)
			lead.EstimatedValue = decimal.NewNullDecimal(value)
		}
		out.Leads = append(out.Leads, lead)
	}

	return out
}

func owned(ownerID string, now time.Time, index int) models.OwnedModel {
	return models.OwnedModel{
		ID:        uuid.New(),
		UserID:    ownerID,
		CreatedAt: now.Add(-time.Duration(index) * time.Millisecond),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
