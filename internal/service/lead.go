package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LeadService handles business logic for sales leads
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	members   repository.TeamMemberRepositoryInterface
	log       activityLog
	validator *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(
	repo repository.LeadRepositoryInterface,
	members repository.TeamMemberRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
	validator *validator.Validate,
) *LeadService {
	return &LeadService{
		repo:      repo,
		members:   members,
		log:       activityLog{repo: activities},
		validator: validator,
	}
}

// CreateLeadRequest represents the data needed to create a lead
type CreateLeadRequest struct {
	TeamMemberID   *string              `json:"team_member_id" validate:"omitempty,uuid"`
	CompanyName    string               `json:"company_name" validate:"required,max=200" example:"TechCorp Solutions"`
	ContactName    string               `json:"contact_name" validate:"required,max=200" example:"John Smith"`
	ContactEmail   *string              `json:"contact_email" validate:"omitempty,email,max=255" example:"john@techcorp.com"`
	ContactPhone   *string              `json:"contact_phone" validate:"omitempty,max=50" example:"+1-555-0123"`
	Status         *models.LeadStatus   `json:"status" example:"new"`      // Optional: defaults to "new"
	Priority       *models.LeadPriority `json:"priority" example:"medium"` // Optional: defaults to "medium"
	Source         *string              `json:"source" validate:"omitempty,max=100" example:"Field Visit"`
	Notes          *string              `json:"notes" validate:"omitempty,max=4000"`
	EstimatedValue *decimal.Decimal     `json:"estimated_value" swaggertype:"number" example:"50000"`
	FollowUpDate   *time.Time           `json:"follow_up_date"`
}

// List returns the owner's leads, newest first
func (s *LeadService) List(ownerID string) ([]models.Lead, error) {
	leads, err := s.repo.ListByUser(ownerID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return nonNilSlice(leads), nil
}

// Pipeline returns the seven-column board with pipeline totals
func (s *LeadService) Pipeline(ownerID string) (*PipelineView, error) {
	leads, err := s.repo.ListByUser(ownerID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return buildPipelineView(leads), nil
}

// Create adds a lead and logs a lead_created activity
func (s *LeadService) Create(ctx context.Context, ownerID string, req *CreateLeadRequest) (*models.Lead, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.LeadStatusNew
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown lead status")
		}
		status = *req.Status
	}

	priority := models.LeadPriorityMedium
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "must be one of low, medium, high")
		}
		priority = *req.Priority
	}

	var value decimal.NullDecimal
	if req.EstimatedValue != nil {
		if req.EstimatedValue.IsNegative() {
			return nil, apperrors.NewValidationError("estimated_value", "must not be negative")
		}
		value = decimal.NewNullDecimal(req.EstimatedValue.Round(2))
	}

	var memberID *uuid.UUID
	if req.TeamMemberID != nil && *req.TeamMemberID != "" {
		id, err := uuid.Parse(*req.TeamMemberID)
		if err != nil {
			return nil, apperrors.NewValidationError("team_member_id", "must be a UUID")
		}
		if _, err := s.members.GetByID(ownerID, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamMemberNotFound
			}
			return nil, fmt.Errorf("failed to load team member: %w", err)
		}
		memberID = &id
	}

	lead := &models.Lead{
		OwnedModel:     models.OwnedModel{UserID: ownerID},
		TeamMemberID:   memberID,
		CompanyName:    req.CompanyName,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Status:         status,
		Priority:       priority,
		Source:         req.Source,
		Notes:          req.Notes,
		EstimatedValue: value,
		FollowUpDate:   req.FollowUpDate,
	}

	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	leadsCreatedTotal.WithLabelValues(string(lead.Status)).Inc()

	s.log.record(ctx, newActivity(ownerID, memberID, models.ActivityTypeLeadCreated,
		"New lead: "+lead.CompanyName,
		stringPtr(fmt.Sprintf("Lead created for %s at %s", lead.ContactName, lead.CompanyName)),
		&lead.ID))

	return lead, nil
}
