package handlers

import (
	"net/http"
	"time"

	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the overview and analytics tabs
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
	location         *time.Location
	now              func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, location: loc, now: time.Now}
}

// GetOverview handles GET /dashboard
// @Summary Dashboard overview
// @Description Active members, today's visits, qualified leads, total pipeline value and the five most recent members and visits
// @Tags dashboard
// @Produce json
// @Param tz query string false "Viewer IANA time zone"
// @Success 200 {object} analytics.OverviewSummary "Overview"
// @Failure 400 {object} map[string]interface{} "Unknown time zone"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	loc, err := viewerLocation(c, h.location)
	if err != nil {
		respondError(c, err)
		return
	}

	overview, err := h.dashboardService.Overview(owner, h.now(), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetAnalytics handles GET /analytics
// @Summary Analytics report
// @Description Pipeline value, conversion rate, seven-day visit histogram, lead status distribution and team performance
// @Tags dashboard
// @Produce json
// @Param tz query string false "Viewer IANA time zone"
// @Success 200 {object} analytics.AnalyticsReport "Analytics report"
// @Failure 400 {object} map[string]interface{} "Unknown time zone"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /analytics [get]
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	loc, err := viewerLocation(c, h.location)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.dashboardService.Analytics(owner, h.now(), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
