// Package workspace holds the per-session application state: who is signed
// in, the four loaded collections and the selected dashboard tab.
package workspace

import (
	"sync"

	"field-marketing-backend/internal/database/models"
)

// Status is the session state of a workspace
type Status string

const (
	StatusLoading         Status = "loading"
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// Tab names a dashboard view
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabTeam      Tab = "team"
	TabVisits    Tab = "visits"
	TabLeads     Tab = "leads"
	TabAnalytics Tab = "analytics"
	TabActivity  Tab = "activity"
)

// Tabs lists the views in navigation order
var Tabs = []Tab{TabDashboard, TabTeam, TabVisits, TabLeads, TabAnalytics, TabActivity}

// ParseTab maps a raw tab name to a Tab. Unknown names select the dashboard.
func ParseTab(name string) Tab {
	for _, t := range Tabs {
		if string(t) == name {
			return t
		}
	}
	return TabDashboard
}

// Identity is the signed-in user as seen by the workspace
type Identity struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Snapshot is one observation of the authentication state. Identity is nil
// when nobody is signed in.
type Snapshot struct {
	Identity  *Identity
	IsLoading bool
}

// Collections groups the four lists a workspace displays
type Collections struct {
	TeamMembers []models.TeamMember   `json:"team_members"`
	Visits      []models.Visit        `json:"visits"`
	Leads       []models.Lead         `json:"leads"`
	Activities  []models.TeamActivity `json:"activities"`
}

// State is safe for concurrent use. Collections are replaced whole, never
// patched, so readers always see a consistent snapshot.
type State struct {
	mu          sync.RWMutex
	status      Status
	identity    *Identity
	collections Collections
	activeTab   Tab
}

// NewState returns a workspace waiting for its first auth snapshot
func NewState() *State {
	return &State{
		status:      StatusLoading,
		activeTab:   TabDashboard,
		collections: emptyCollections(),
	}
}

func emptyCollections() Collections {
	return Collections{
		TeamMembers: []models.TeamMember{},
		Visits:      []models.Visit{},
		Leads:       []models.Lead{},
		Activities:  []models.TeamActivity{},
	}
}

// Observe applies an auth snapshot and returns the resulting status.
// A loading snapshot keeps the current status. Signing out or switching to
// another owner clears the loaded collections.
func (s *State) Observe(snap Snapshot) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.IsLoading {
		return s.status
	}

	if snap.Identity == nil || snap.Identity.OwnerID == "" {
		s.status = StatusUnauthenticated
		s.identity = nil
		s.collections = emptyCollections()
		return s.status
	}

	if s.identity != nil && s.identity.OwnerID != snap.Identity.OwnerID {
		s.collections = emptyCollections()
	}
	id := *snap.Identity
	s.identity = &id
	s.status = StatusAuthenticated
	return s.status
}

// Status returns the current session status
func (s *State) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Identity returns a copy of the signed-in identity, or nil
func (s *State) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// OwnerID returns the owner key of the signed-in user, or ""
func (s *State) OwnerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.OwnerID
}

// Collections returns the currently loaded lists
func (s *State) Collections() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collections
}

// ReplaceTeamMembers swaps the team member list
func (s *State) ReplaceTeamMembers(members []models.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections.TeamMembers = nonNil(members)
}

// ReplaceVisits swaps the visit list
func (s *State) ReplaceVisits(visits []models.Visit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections.Visits = nonNil(visits)
}

// ReplaceLeads swaps the lead list
func (s *State) ReplaceLeads(leads []models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections.Leads = nonNil(leads)
}

// ReplaceActivities swaps the activity list
func (s *State) ReplaceActivities(activities []models.TeamActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections.Activities = nonNil(activities)
}

// ReplaceAll swaps all four lists at once
func (s *State) ReplaceAll(c Collections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = Collections{
		TeamMembers: nonNil(c.TeamMembers),
		Visits:      nonNil(c.Visits),
		Leads:       nonNil(c.Leads),
		Activities:  nonNil(c.Activities),
	}
}

// ActiveTab returns the selected view
func (s *State) ActiveTab() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// SetActiveTab selects a view by name and returns the tab actually selected
func (s *State) SetActiveTab(name string) Tab {
	tab := ParseTab(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
	return tab
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
