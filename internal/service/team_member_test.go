package service_test

import (
	"context"
	"errors"
	"testing"

	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/mocks"
	"field-marketing-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testOwner = "github:1001"

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

type TeamMemberServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	mockActivities *mocks.MockActivityRepositoryInterface
	memberService  *service.TeamMemberService
}

func (suite *TeamMemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockActivities = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.memberService = service.NewTeamMemberService(suite.mockMemberRepo, suite.mockActivities, validator.New())
}

func (suite *TeamMemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamMemberServiceTestSuite) validRequest() *service.CreateTeamMemberRequest {
	return &service.CreateTeamMemberRequest{
		Name:  "Sarah Johnson",
		Email: "sarah@company.com",
		Role:  "Senior Field Rep",
	}
}

func (suite *TeamMemberServiceTestSuite) TestCreate_DefaultsAndActivity() {
	memberID := uuid.New()
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.TeamMember) error {
		assert.Equal(suite.T(), testOwner, m.UserID)
		assert.Equal(suite.T(), models.MemberStatusOffline, m.Status)
		assert.False(suite.T(), m.LastSeen.IsZero())
		assert.False(suite.T(), m.HasLocation())
		m.ID = memberID
		return nil
	})
	suite.mockActivities.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.TeamActivity) error {
		assert.Equal(suite.T(), models.ActivityTypeTeamUpdate, a.ActivityType)
		assert.Equal(suite.T(), "New team member: Sarah Johnson", a.Title)
		require.NotNil(suite.T(), a.Description)
		assert.Equal(suite.T(), "Sarah Johnson joined as Senior Field Rep", *a.Description)
		assert.Equal(suite.T(), memberID, *a.RelatedID)
		assert.Equal(suite.T(), memberID, *a.TeamMemberID)
		assert.Equal(suite.T(), testOwner, a.UserID)
		return nil
	})

	member, err := suite.memberService.Create(context.Background(), testOwner, suite.validRequest())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), memberID, member.ID)
	assert.Equal(suite.T(), "Sarah Johnson", member.Name)
}

func (suite *TeamMemberServiceTestSuite) TestCreate_ExplicitStatusAndLocation() {
	req := suite.validRequest()
	status := models.MemberStatusActive
	req.Status = &status
	req.LastLocationLat = floatPtr(40.7128)
	req.LastLocationLng = floatPtr(-74.006)

	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockActivities.EXPECT().Create(gomock.Any()).Return(nil)

	member, err := suite.memberService.Create(context.Background(), testOwner, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MemberStatusActive, member.Status)
	assert.True(suite.T(), member.HasLocation())
	assert.Equal(suite.T(), 40.7128, *member.LastLocationLat)
}

func (suite *TeamMemberServiceTestSuite) TestCreate_ActivityFailureStillReturnsMember() {
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockActivities.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))

	member, err := suite.memberService.Create(context.Background(), testOwner, suite.validRequest())

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), member)
}

func (suite *TeamMemberServiceTestSuite) TestCreate_RepositoryError() {
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	member, err := suite.memberService.Create(context.Background(), testOwner, suite.validRequest())

	assert.Nil(suite.T(), member)
	assert.ErrorContains(suite.T(), err, "failed to create team member")
}

func (suite *TeamMemberServiceTestSuite) TestCreate_ValidationErrors() {
	busy := models.MemberStatus("busy")
	testCases := []struct {
		name     string
		mutate   func(r *service.CreateTeamMemberRequest)
		validate func(err error)
	}{
		{
			name:   "missing name",
			mutate: func(r *service.CreateTeamMemberRequest) { r.Name = "" },
			validate: func(err error) {
				var verrs validator.ValidationErrors
				assert.True(suite.T(), errors.As(err, &verrs))
			},
		},
		{
			name:   "malformed email",
			mutate: func(r *service.CreateTeamMemberRequest) { r.Email = "not-an-email" },
			validate: func(err error) {
				var verrs validator.ValidationErrors
				assert.True(suite.T(), errors.As(err, &verrs))
			},
		},
		{
			name:     "unknown status",
			mutate:   func(r *service.CreateTeamMemberRequest) { r.Status = &busy },
			validate: func(err error) { assert.True(suite.T(), apperrors.IsValidation(err)) },
		},
		{
			name:     "latitude without longitude",
			mutate:   func(r *service.CreateTeamMemberRequest) { r.LastLocationLat = floatPtr(10) },
			validate: func(err error) { assert.True(suite.T(), apperrors.IsValidation(err)) },
		},
		{
			name: "latitude out of range",
			mutate: func(r *service.CreateTeamMemberRequest) {
				r.LastLocationLat = floatPtr(91)
				r.LastLocationLng = floatPtr(0)
			},
			validate: func(err error) { assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCoordinates) },
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validRequest()
			tc.mutate(req)

			member, err := suite.memberService.Create(context.Background(), testOwner, req)

			assert.Nil(suite.T(), member)
			require.Error(suite.T(), err)
			tc.validate(err)
		})
	}
}

func (suite *TeamMemberServiceTestSuite) TestList_CountsPresenceAndLocations() {
	members := []models.TeamMember{
		{Name: "A", Status: models.MemberStatusActive, LastLocationLat: floatPtr(1), LastLocationLng: floatPtr(2)},
		{Name: "B", Status: models.MemberStatusOnline},
		{Name: "C", Status: models.MemberStatusOffline, LastLocationLat: floatPtr(3), LastLocationLng: floatPtr(4)},
	}
	suite.mockMemberRepo.EXPECT().ListByUser(testOwner, 0).Return(members, nil)

	view, err := suite.memberService.List(testOwner)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), view.Members, 3)
	assert.Equal(suite.T(), 1, view.Status.Active)
	assert.Equal(suite.T(), 1, view.Status.Online)
	assert.Equal(suite.T(), 1, view.Status.Offline)
	assert.Equal(suite.T(), 3, view.Status.Total)
	assert.Equal(suite.T(), 2, view.Located)
	assert.Equal(suite.T(), 1, view.Unlocated)
}

func (suite *TeamMemberServiceTestSuite) TestList_EmptyIsNotNil() {
	suite.mockMemberRepo.EXPECT().ListByUser(testOwner, 0).Return(nil, nil)

	view, err := suite.memberService.List(testOwner)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), view.Members)
	assert.Empty(suite.T(), view.Members)
}

func (suite *TeamMemberServiceTestSuite) TestList_RepositoryError() {
	suite.mockMemberRepo.EXPECT().ListByUser(testOwner, 0).Return(nil, errors.New("db down"))

	view, err := suite.memberService.List(testOwner)

	assert.Nil(suite.T(), view)
	assert.Error(suite.T(), err)
}

func TestTeamMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberServiceTestSuite))
}
