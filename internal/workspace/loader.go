package workspace

import (
	"fmt"

	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
)

// DefaultActivityLimit is how many recent activities a workspace loads
const DefaultActivityLimit = 50

// Source lists an owner's records, newest first
type Source interface {
	ListTeamMembers(ownerID string) ([]models.TeamMember, error)
	ListVisits(ownerID string) ([]models.Visit, error)
	ListLeads(ownerID string) ([]models.Lead, error)
	ListActivities(ownerID string, limit int) ([]models.TeamActivity, error)
}

// Loader fills a State from a Source
type Loader struct {
	source        Source
	activityLimit int
}

// NewLoader creates a loader. A non-positive limit uses DefaultActivityLimit.
func NewLoader(source Source, activityLimit int) *Loader {
	if activityLimit <= 0 {
		activityLimit = DefaultActivityLimit
	}
	return &Loader{source: source, activityLimit: activityLimit}
}

// Fetch reads all four collections for the owner without touching any state
func (l *Loader) Fetch(ownerID string) (Collections, error) {
	members, err := l.source.ListTeamMembers(ownerID)
	if err != nil {
		return Collections{}, fmt.Errorf("failed to load team members: %w", err)
	}
	visits, err := l.source.ListVisits(ownerID)
	if err != nil {
		return Collections{}, fmt.Errorf("failed to load visits: %w", err)
	}
	leads, err := l.source.ListLeads(ownerID)
	if err != nil {
		return Collections{}, fmt.Errorf("failed to load leads: %w", err)
	}
	activities, err := l.source.ListActivities(ownerID, l.activityLimit)
	if err != nil {
		return Collections{}, fmt.Errorf("failed to load activities: %w", err)
	}
	return Collections{
		TeamMembers: members,
		Visits:      visits,
		Leads:       leads,
		Activities:  activities,
	}, nil
}

// Load refreshes an authenticated State. On any error the State keeps its
// previous collections.
func (l *Loader) Load(state *State) error {
	ownerID := state.OwnerID()
	if state.Status() != StatusAuthenticated || ownerID == "" {
		return apperrors.ErrNotSignedIn
	}

	collections, err := l.Fetch(ownerID)
	if err != nil {
		return err
	}

	// the owner may have changed while fetching
	if state.OwnerID() != ownerID {
		return apperrors.ErrNotSignedIn
	}
	state.ReplaceAll(collections)
	return nil
}
