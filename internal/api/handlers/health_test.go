package handlers_test

import (
	"net/http"
	"testing"

	"field-marketing-backend/internal/api/handlers"
	"field-marketing-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := handlers.NewHealthHandler(db, map[string]bool{"photo_storage": true, "directory": false})
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)

	w := h.MakeRequest(http.MethodGet, "/health", nil)
	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Services["database"])
	assert.Equal(t, "configured", resp.Services["photo_storage"])
	assert.Equal(t, "disabled", resp.Services["directory"])

	w = h.MakeRequest(http.MethodGet, "/health/ready", nil)
	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, w, http.StatusOK, &ready)
	assert.Equal(t, true, ready["ready"])

	w = h.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth_DatabaseDown(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	handler := handlers.NewHealthHandler(db, nil)
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)

	w := h.MakeRequest(http.MethodGet, "/health", nil)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
}
