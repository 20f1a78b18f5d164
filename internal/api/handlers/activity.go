package handlers

import (
	"net/http"
	"strconv"
	"time"

	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the team activity feed
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
	location        *time.Location
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface, loc *time.Location) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, location: loc}
}

// GetFeed handles GET /activities
// @Summary Activity feed
// @Description Recent activities grouped by the viewer's calendar day, newest day first
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum number of activities" default(50)
// @Param tz query string false "Viewer IANA time zone"
// @Success 200 {object} service.ActivityFeed "Grouped activities"
// @Failure 400 {object} map[string]interface{} "Invalid limit or time zone"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) GetFeed(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperrors.ErrInvalidLimit)
			return
		}
		limit = n
	}

	loc, err := viewerLocation(c, h.location)
	if err != nil {
		respondError(c, err)
		return
	}

	feed, err := h.activityService.Feed(owner, limit, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}
