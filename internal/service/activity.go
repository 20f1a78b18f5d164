package service

import (
	"fmt"
	"time"

	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/repository"
)

// MaxActivityLimit caps a single feed request
const MaxActivityLimit = 500

// ActivityService serves the grouped activity feed
type ActivityService struct {
	repo         repository.ActivityRepositoryInterface
	defaultLimit int
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, defaultLimit int) *ActivityService {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &ActivityService{repo: repo, defaultLimit: defaultLimit}
}

// Feed returns up to limit recent activities grouped by the viewer's calendar day.
// A zero limit uses the configured default.
func (s *ActivityService) Feed(ownerID string, limit int, loc *time.Location) (*ActivityFeed, error) {
	switch {
	case limit < 0:
		return nil, apperrors.ErrInvalidLimit
	case limit == 0:
		limit = s.defaultLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}

	activities, err := s.repo.ListByUser(ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return buildActivityFeed(activities, loc), nil
}
