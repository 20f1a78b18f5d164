package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"field-marketing-backend/internal/api/handlers"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/mocks"
	"field-marketing-backend/internal/service"
	"field-marketing-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupActivityHandler(t *testing.T) (*mocks.MockActivityServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockActivityServiceInterface(ctrl)
	handler := handlers.NewActivityHandler(svc, time.UTC)

	h := testutils.SetupSignedInHTTPTest(testutils.TestClaims())
	h.Router.GET("/activities", handler.GetFeed)
	return svc, h
}

func TestGetFeed_Limit(t *testing.T) {
	testCases := []struct {
		name  string
		url   string
		limit int
	}{
		{name: "default", url: "/activities", limit: 0},
		{name: "explicit", url: "/activities?limit=10", limit: 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := setupActivityHandler(t)
			svc.EXPECT().Feed(ownerID, tc.limit, time.UTC).Return(&service.ActivityFeed{Total: 0}, nil)

			w := h.MakeRequest(http.MethodGet, tc.url, nil)

			var feed service.ActivityFeed
			testutils.AssertJSONResponse(t, w, http.StatusOK, &feed)
		})
	}
}

func TestGetFeed_InvalidLimit(t *testing.T) {
	svc, h := setupActivityHandler(t)

	w := h.MakeRequest(http.MethodGet, "/activities?limit=abc", nil)
	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid limit")

	svc.EXPECT().Feed(ownerID, -5, time.UTC).Return(nil, apperrors.ErrInvalidLimit)
	w = h.MakeRequest(http.MethodGet, "/activities?limit=-5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
