package handlers

import (
	"net/http"

	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead management
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description All leads of the owner, newest first
// @Tags leads
// @Produce json
// @Success 200 {array} models.Lead "Leads"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	leads, err := h.leadService.List(owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetPipeline handles GET /leads/pipeline
// @Summary Lead pipeline board
// @Description Seven stage columns in board order with their leads, plus total and closed value and the conversion rate
// @Tags leads
// @Produce json
// @Success 200 {object} service.PipelineView "Pipeline"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads/pipeline [get]
func (h *LeadHandler) GetPipeline(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	view, err := h.leadService.Pipeline(owner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateLead handles POST /leads
// @Summary Create a lead
// @Description Creates a lead. Status defaults to new and priority to medium.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} models.Lead "Created lead"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}
