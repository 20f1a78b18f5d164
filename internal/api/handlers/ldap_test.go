package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"field-marketing-backend/internal/api/handlers"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/mocks"
	"field-marketing-backend/internal/service"
	"field-marketing-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupDirectoryHandler(t *testing.T) (*mocks.MockDirectoryServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDirectoryServiceInterface(ctrl)
	handler := handlers.NewDirectoryHandler(svc)

	h := testutils.SetupSignedInHTTPTest(testutils.TestClaims())
	h.Router.GET("/directory/people", handler.SearchPeople)
	return svc, h
}

func TestSearchPeople(t *testing.T) {
	svc, h := setupDirectoryHandler(t)
	svc.EXPECT().SearchPeople("sarah").Return([]service.DirectoryPerson{
		{DN: "uid=sarahj,ou=people,dc=company,dc=com", Name: "Sarah Johnson", Email: "sarah@company.com"},
	}, nil)

	w := h.MakeRequest(http.MethodGet, "/directory/people?q=sarah", nil)

	var resp struct {
		Result []service.DirectoryPerson `json:"result"`
	}
	testutils.AssertJSONResponse(t, w, http.StatusOK, &resp)
	require.Len(t, resp.Result, 1)
	assert.Equal(t, "Sarah Johnson", resp.Result[0].Name)
}

func TestSearchPeople_MissingQuery(t *testing.T) {
	_, h := setupDirectoryHandler(t)

	w := h.MakeRequest(http.MethodGet, "/directory/people", nil)

	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "q")
}

func TestSearchPeople_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not configured", err: apperrors.ErrDirectoryNotConfigured, status: http.StatusServiceUnavailable},
		{name: "upstream", err: errors.Join(apperrors.ErrDirectoryFailed, errors.New("connection reset")), status: http.StatusBadGateway},
		{name: "short query", err: apperrors.NewValidationError("q", "query must be at least 2 characters"), status: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := setupDirectoryHandler(t)
			svc.EXPECT().SearchPeople("sa").Return(nil, tc.err)

			w := h.MakeRequest(http.MethodGet, "/directory/people?q=sa", nil)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}
