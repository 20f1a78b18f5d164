package service

import (
	"context"
	"fmt"
	"time"

	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/logger"
	"field-marketing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TeamMemberService handles business logic for field team members
type TeamMemberService struct {
	repo      repository.TeamMemberRepositoryInterface
	log       activityLog
	validator *validator.Validate
	now       func() time.Time
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(repo repository.TeamMemberRepositoryInterface, activities repository.ActivityRepositoryInterface, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		repo:      repo,
		log:       activityLog{repo: activities},
		validator: validator,
		now:       time.Now,
	}
}

// CreateTeamMemberRequest represents the data needed to add a team member
type CreateTeamMemberRequest struct {
	Name            string               `json:"name" validate:"required,max=200" example:"Sarah Johnson"`
	Email           string               `json:"email" validate:"required,email,max=255" example:"sarah@company.com"`
	Role            string               `json:"role" validate:"required,max=100" example:"Senior Field Rep"`
	Status          *models.MemberStatus `json:"status" example:"offline"` // Optional: defaults to "offline"
	LastLocationLat *float64             `json:"last_location_lat" example:"40.7128"`
	LastLocationLng *float64             `json:"last_location_lng" example:"-74.006"`
}

// List returns the owner's team, newest first, with presence counts
func (s *TeamMemberService) List(ownerID string) (*TeamView, error) {
	members, err := s.repo.ListByUser(ownerID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return buildTeamView(members), nil
}

// Create adds a team member and logs a team_update activity
func (s *TeamMemberService) Create(ctx context.Context, ownerID string, req *CreateTeamMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.MemberStatusOffline
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of online, offline, active")
		}
		status = *req.Status
	}

	if (req.LastLocationLat == nil) != (req.LastLocationLng == nil) {
		return nil, apperrors.NewValidationError("location", "latitude and longitude must be set together")
	}
	if req.LastLocationLat != nil && !validCoordinates(*req.LastLocationLat, *req.LastLocationLng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	member := &models.TeamMember{
		OwnedModel:      models.OwnedModel{UserID: ownerID},
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		Status:          status,
		LastLocationLat: req.LastLocationLat,
		LastLocationLng: req.LastLocationLng,
		LastSeen:        s.now(),
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	teamMembersCreatedTotal.Inc()
	logger.WithContext(ctx).Infof("Added team member %s", member.ID)

	s.log.record(ctx, newActivity(ownerID, &member.ID, models.ActivityTypeTeamUpdate,
		"New team member: "+member.Name,
		stringPtr(fmt.Sprintf("%s joined as %s", member.Name, member.Role)),
		&member.ID))

	return member, nil
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
