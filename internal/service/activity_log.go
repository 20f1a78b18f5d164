package service

import (
	"context"

	"field-marketing-backend/internal/database/models"
	"field-marketing-backend/internal/logger"
	"field-marketing-backend/internal/repository"

	"github.com/google/uuid"
)

// activityLog appends entries to the team activity log. Writes are
// best-effort: the record that triggered them already exists.
type activityLog struct {
	repo repository.ActivityRepositoryInterface
}

func (l activityLog) record(ctx context.Context, entry *models.TeamActivity) {
	if err := l.repo.Create(entry); err != nil {
		activityLogFailures.Inc()
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"activity_type": entry.ActivityType,
			"related_id":    entry.RelatedID,
		}).Warnf("Failed to record activity: %v", err)
	}
}

func newActivity(ownerID string, memberID *uuid.UUID, kind models.ActivityType, title string, description *string, relatedID *uuid.UUID) *models.TeamActivity {
	return &models.TeamActivity{
		OwnedModel:   models.OwnedModel{UserID: ownerID},
		TeamMemberID: memberID,
		ActivityType: kind,
		Title:        title,
		Description:  description,
		RelatedID:    relatedID,
	}
}

func stringPtr(s string) *string {
	return &s
}
