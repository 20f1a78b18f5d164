package handlers

import (
	"net/http"

	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for the field team
type TeamMemberHandler struct {
	teamMemberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(teamMemberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{teamMemberService: teamMemberService}
}

// ListTeamMembers handles GET /team-members
// @Summary List team members
// @Description Team locations view: members newest first with presence counts
// @Tags team-members
// @Produce json
// @Success 200 {object} service.TeamView "Team members"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	view, err := h.teamMemberService.List(owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateTeamMember handles POST /team-members
// @Summary Add a team member
// @Description Adds a field team member. Status defaults to offline.
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} models.TeamMember "Created team member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamMemberService.Create(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}
