package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"field-marketing-backend/internal/api/handlers"
	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/mocks"
	"field-marketing-backend/internal/service"
	"field-marketing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const ownerID = testutils.TestOwnerID

type TeamMemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamMemberServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *TeamMemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamMemberServiceInterface(suite.ctrl)
	handler := handlers.NewTeamMemberHandler(suite.mockService)

	suite.http = testutils.SetupSignedInHTTPTest(testutils.TestClaims())
	suite.http.Router.GET("/team-members", handler.ListTeamMembers)
	suite.http.Router.POST("/team-members", handler.CreateTeamMember)
}

func (suite *TeamMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamMemberHandlerTestSuite) TestListTeamMembers_Success() {
	view := &service.TeamView{
		Members: []models.TeamMember{{Name: "Sarah Johnson", Status: models.MemberStatusActive}},
		Located: 0, Unlocated: 1,
	}
	view.Status.Active, view.Status.Total = 1, 1
	suite.mockService.EXPECT().List(ownerID).Return(view, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/team-members", nil)

	var resp service.TeamView
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Len(suite.T(), resp.Members, 1)
	assert.Equal(suite.T(), 1, resp.Status.Active)
	assert.Equal(suite.T(), 1, resp.Unlocated)
}

func (suite *TeamMemberHandlerTestSuite) TestListTeamMembers_ServiceError() {
	suite.mockService.EXPECT().List(ownerID).Return(nil, errors.New("db down"))

	w := suite.http.MakeRequest(http.MethodGet, "/team-members", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "db down")
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *service.CreateTeamMemberRequest) (*models.TeamMember, error) {
			assert.Equal(suite.T(), "Mike Chen", req.Name)
			assert.Nil(suite.T(), req.Status)
			return &models.TeamMember{OwnedModel: models.OwnedModel{ID: id, UserID: ownerID}, Name: req.Name, Status: models.MemberStatusOffline}, nil
		})

	body := map[string]interface{}{"name": "Mike Chen", "email": "mike@company.com", "role": "Field Rep"}
	w := suite.http.MakeRequest(http.MethodPost, "/team-members", body)

	var member models.TeamMember
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &member)
	assert.Equal(suite.T(), id, member.ID)
	assert.Equal(suite.T(), models.MemberStatusOffline, member.Status)
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_InvalidJSON() {
	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/team-members", nil, map[string]string{"Content-Type": "application/json"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_ErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: apperrors.NewValidationError("email", "must be a valid email"), status: http.StatusBadRequest},
		{name: "coordinates", err: apperrors.ErrInvalidCoordinates, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).Return(nil, tc.err)

			w := suite.http.MakeRequest(http.MethodPost, "/team-members", map[string]string{"name": "X"})

			assert.Equal(suite.T(), tc.status, w.Code)
		})
	}
}

func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}

func TestTeamMemberHandler_RequiresOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewTeamMemberHandler(mocks.NewMockTeamMemberServiceInterface(ctrl))
	h := testutils.SetupHTTPTest()
	h.Router.GET("/team-members", handler.ListTeamMembers)

	w := h.MakeRequest(http.MethodGet, "/team-members", nil)

	testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
}
