package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/logger"
	"field-marketing-backend/internal/repository"
	"field-marketing-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const photoVerifiedDescription = "Visit completed with photo verification"

// VisitService records and lists field check-ins
type VisitService struct {
	repo          repository.VisitRepositoryInterface
	members       repository.TeamMemberRepositoryInterface
	photos        storage.PhotoStoreInterface
	log           activityLog
	validator     *validator.Validate
	maxPhotoBytes int64
	now           func() time.Time
}

// NewVisitService creates a new visit service. photos may be nil when
// storage is not configured; check-ins with a photo are then rejected.
func NewVisitService(
	repo repository.VisitRepositoryInterface,
	members repository.TeamMemberRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
	photos storage.PhotoStoreInterface,
	validator *validator.Validate,
	maxPhotoBytes int64,
) *VisitService {
	return &VisitService{
		repo:          repo,
		members:       members,
		photos:        photos,
		log:           activityLog{repo: activities},
		validator:     validator,
		maxPhotoBytes: maxPhotoBytes,
		now:           time.Now,
	}
}

// CheckInRequest represents a field check-in. It binds from JSON or a
// multipart form.
type CheckInRequest struct {
	TeamMemberID string     `json:"team_member_id" form:"team_member_id" validate:"required,uuid" example:"0b7e3c1a-8d55-4a55-9a3c-6c1f5f1f2a10"`
	LocationName string     `json:"location_name" form:"location_name" validate:"required,max=200" example:"TechCorp Headquarters"`
	LocationLat  float64    `json:"location_lat" form:"location_lat" example:"40.7589"`
	LocationLng  float64    `json:"location_lng" form:"location_lng" example:"-73.9851"`
	Notes        *string    `json:"notes" form:"notes" validate:"omitempty,max=4000"`
	VisitTime    *time.Time `json:"visit_time" form:"visit_time" time_format:"2006-01-02T15:04:05Z07:00"` // Optional: defaults to now
}

// PhotoUpload is an optional image attached to a check-in
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// List returns the owner's check-ins by visit time, newest first
func (s *VisitService) List(ownerID string, now time.Time, loc *time.Location) (*VisitsView, error) {
	visits, err := s.repo.ListByUser(ownerID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return buildVisitsView(visits, now, loc), nil
}

// CheckIn records a visit. The photo is uploaded first and a failed upload
// aborts the check-in, so a visit never points at a missing photo.
func (s *VisitService) CheckIn(ctx context.Context, ownerID string, req *CheckInRequest, photo *PhotoUpload) (*models.Visit, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !validCoordinates(req.LocationLat, req.LocationLng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	memberID, err := uuid.Parse(req.TeamMemberID)
	if err != nil {
		return nil, apperrors.NewValidationError("team_member_id", "must be a UUID")
	}
	if _, err := s.members.GetByID(ownerID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to load team member: %w", err)
	}

	now := s.now()
	visit := &models.Visit{
		OwnedModel:   models.OwnedModel{ID: uuid.New(), UserID: ownerID},
		TeamMemberID: memberID,
		LocationName: req.LocationName,
		LocationLat:  req.LocationLat,
		LocationLng:  req.LocationLng,
		Notes:        req.Notes,
		VisitTime:    now,
	}
	if req.VisitTime != nil && !req.VisitTime.IsZero() {
		visit.VisitTime = *req.VisitTime
	}

	if photo != nil {
		url, err := s.uploadPhoto(ctx, ownerID, photo, now)
		if err != nil {
			return nil, err
		}
		visit.PhotoURL = &url
	}

	if err := s.repo.Create(visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	checkInsTotal.WithLabelValues(boolLabel(visit.HasPhoto())).Inc()

	description := photoVerifiedDescription
	if visit.Notes != nil && strings.TrimSpace(*visit.Notes) != "" {
		description = *visit.Notes
	}
	s.log.record(ctx, newActivity(ownerID, &memberID, models.ActivityTypeVisit,
		"Visit to "+visit.LocationName, &description, &visit.ID))

	return visit, nil
}

func (s *VisitService) uploadPhoto(ctx context.Context, ownerID string, photo *PhotoUpload, now time.Time) (string, error) {
	if s.photos == nil {
		return "", apperrors.ErrPhotoStorageNotConfigured
	}
	if s.maxPhotoBytes > 0 && photo.Size > s.maxPhotoBytes {
		return "", apperrors.ErrPhotoTooLarge
	}
	if !strings.HasPrefix(photo.ContentType, "image/") {
		return "", apperrors.ErrPhotoNotImage
	}

	key := storage.PhotoKey(ownerID, photo.FileName, now)
	url, err := s.photos.Upload(ctx, key, photo.Body, photo.ContentType, true)
	if err != nil {
		logger.WithContext(ctx).Errorf("Failed to upload check-in photo %s: %v", key, err)
		return "", err
	}
	photoUploadBytes.Add(float64(photo.Size))
	return url, nil
}
