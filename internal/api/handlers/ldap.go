package handlers

import (
	"net/http"

	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles people directory requests
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// SearchPeople searches the company directory to prefill a new team member
// @Summary Search the people directory
// @Description Searches LDAP for people whose name or mail starts with q
// @Tags directory
// @Produce json
// @Param q query string true "Name or mail prefix (at least 2 characters)"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} map[string]interface{} "Missing or too short query"
// @Failure 502 {object} map[string]interface{} "Directory connection or search failed"
// @Failure 503 {object} map[string]interface{} "Directory not configured"
// @Security BearerAuth
// @Router /directory/people [get]
func (h *DirectoryHandler) SearchPeople(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: q"})
		return
	}

	people, err := h.directoryService.SearchPeople(q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": people})
}
