package service_test

import (
	"context"
	"errors"
	"testing"

	"field-marketing-backend/internal/mocks"
	"field-marketing-backend/internal/repository"
	"field-marketing-backend/internal/seed"
	"field-marketing-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func demoDataset(t *testing.T) *seed.Dataset {
	t.Helper()
	ds, err := seed.Demo()
	require.NoError(t, err)
	return ds
}

func TestEnsureDemoData_SeedsOwnerRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProvisionRepositoryInterface(ctrl)
	ds := demoDataset(t)

	repo.EXPECT().ProvisionOnce(testOwner, ds.Version, gomock.Any()).
		DoAndReturn(func(owner string, _ int, s *repository.DemoSeed) (bool, error) {
			require.Len(t, s.TeamMembers, 3)
			for _, m := range s.TeamMembers {
				assert.Equal(t, owner, m.UserID)
			}
			for _, v := range s.Visits {
				assert.Equal(t, owner, v.UserID)
			}
			return true, nil
		})

	seeded, err := service.NewProvisioningService(repo, ds).EnsureDemoData(context.Background(), testOwner)

	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestEnsureDemoData_AlreadyProvisioned(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProvisionRepositoryInterface(ctrl)
	ds := demoDataset(t)
	repo.EXPECT().ProvisionOnce(testOwner, ds.Version, gomock.Any()).Return(false, nil)

	seeded, err := service.NewProvisioningService(repo, ds).EnsureDemoData(context.Background(), testOwner)

	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestEnsureDemoData_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProvisionRepositoryInterface(ctrl)
	ds := demoDataset(t)
	svc := service.NewProvisioningService(repo, ds)

	_, err := svc.EnsureDemoData(context.Background(), "")
	assert.Error(t, err)

	repo.EXPECT().ProvisionOnce(testOwner, ds.Version, gomock.Any()).Return(false, errors.New("deadlock"))
	seeded, err := svc.EnsureDemoData(context.Background(), testOwner)
	assert.False(t, seeded)
	assert.ErrorContains(t, err, "deadlock")
}
