package service

import (
	"context"
	"fmt"
	"time"

	"field-marketing-backend/internal/logger"
	"field-marketing-backend/internal/repository"
	"field-marketing-backend/internal/seed"
)

// ProvisioningService gives a new owner a sample workspace on first sign-in
type ProvisioningService struct {
	repo    repository.ProvisionRepositoryInterface
	dataset *seed.Dataset
	now     func() time.Time
}

// NewProvisioningService creates a provisioning service seeding dataset
func NewProvisioningService(repo repository.ProvisionRepositoryInterface, dataset *seed.Dataset) *ProvisioningService {
	return &ProvisioningService{repo: repo, dataset: dataset, now: time.Now}
}

// EnsureDemoData seeds the sample workspace at most once per owner and only
// when the owner has no team members yet. It reports whether rows were inserted.
func (s *ProvisioningService) EnsureDemoData(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("owner id is required")
	}

	seeded, err := s.repo.ProvisionOnce(ownerID, s.dataset.Version, s.dataset.Build(ownerID, s.now()))
	if err != nil {
		provisioningRunsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to provision demo data: %w", err)
	}

	if seeded {
		provisioningRunsTotal.WithLabelValues("seeded").Inc()
		logger.WithContext(ctx).Infof("Provisioned demo workspace (seed version %d)", s.dataset.Version)
	} else {
		provisioningRunsTotal.WithLabelValues("skipped").Inc()
	}
	return seeded, nil
}
