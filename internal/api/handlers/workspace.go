package handlers

import (
	"net/http"
	"time"

	"field-marketing-backend/internal/auth"
	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler serves the signed-in session and its tab views
type WorkspaceHandler struct {
	workspaceService service.WorkspaceServiceInterface
	location         *time.Location
	now              func() time.Time
}

// NewWorkspaceHandler creates a new workspace handler. loc is the default viewer calendar.
func NewWorkspaceHandler(workspaceService service.WorkspaceServiceInterface, loc *time.Location) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService, location: loc, now: time.Now}
}

// GetSession handles GET /workspace
// @Summary Get the workspace session
// @Description Returns the session status, the signed-in identity, all collections and the rendered active tab. Demo data is provisioned on the first call of a new owner. Without a token the status is "unauthenticated".
// @Tags workspace
// @Produce json
// @Param tab query string false "Active tab" Enums(dashboard, team, visits, leads, analytics, activity)
// @Param tz query string false "Viewer IANA time zone"
// @Success 200 {object} service.SessionResponse "Workspace session"
// @Failure 400 {object} map[string]interface{} "Unknown time zone"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workspace [get]
func (h *WorkspaceHandler) GetSession(c *gin.Context) {
	loc, err := viewerLocation(c, h.location)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, _ := auth.GetAuthClaims(c)
	resp, err := h.workspaceService.Session(c.Request.Context(), claims, c.Query("tab"), h.now(), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetView handles GET /workspace/views/:tab
// @Summary Render one workspace tab
// @Description Loads the owner's collections and renders the payload of a single tab. Unknown tab names render the dashboard.
// @Tags workspace
// @Produce json
// @Param tab path string true "Tab name"
// @Param tz query string false "Viewer IANA time zone"
// @Success 200 {object} service.ViewResponse "Rendered tab"
// @Failure 400 {object} map[string]interface{} "Unknown time zone"
// @Failure 401 {object} map[string]interface{} "Not signed in"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workspace/views/{tab} [get]
func (h *WorkspaceHandler) GetView(c *gin.Context) {
	loc, err := viewerLocation(c, h.location)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, _ := auth.GetAuthClaims(c)
	resp, err := h.workspaceService.View(c.Request.Context(), claims, c.Param("tab"), h.now(), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
