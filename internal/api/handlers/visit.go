package handlers

import (
	"errors"
	"net/http"
	"time"

	"field-marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// photoField is the multipart field carrying the check-in photo
const photoField = "photo"

// VisitHandler handles HTTP requests for field check-ins
type VisitHandler struct {
	visitService service.VisitServiceInterface
	location     *time.Location
	now          func() time.Time
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService service.VisitServiceInterface, loc *time.Location) *VisitHandler {
	return &VisitHandler{visitService: visitService, location: loc, now: time.Now}
}

// ListVisits handles GET /visits
// @Summary List check-ins
// @Description Check-ins by visit time, newest first, with today and photo counts
// @Tags visits
// @Produce json
// @Param tz query string false "Viewer IANA time zone"
// @Success 200 {object} service.VisitsView "Check-ins"
// @Failure 400 {object} map[string]interface{} "Unknown time zone"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /visits [get]
func (h *VisitHandler) ListVisits(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	loc, err := viewerLocation(c, h.location)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.visitService.List(owner, h.now(), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CheckIn handles POST /visits
// @Summary Record a check-in
// @Description Records a visit for one of the owner's team members. Send JSON, or multipart/form-data with an optional "photo" image file. The photo is uploaded before the visit is stored.
// @Tags visits
// @Accept json,mpfd
// @Produce json
// @Param visit body service.CheckInRequest false "Check-in data (JSON)"
// @Param photo formData file false "Check-in photo"
// @Success 201 {object} models.Visit "Recorded visit"
// @Failure 400 {object} map[string]interface{} "Invalid request or photo"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Failure 502 {object} map[string]interface{} "Photo upload failed"
// @Failure 503 {object} map[string]interface{} "Photo storage not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /visits [post]
func (h *VisitHandler) CheckIn(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}

	var req service.CheckInRequest
	var photo *service.PhotoUpload

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		fh, err := c.FormFile(photoField)
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo: " + err.Error()})
			return
		default:
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo: " + err.Error()})
				return
			}
			defer file.Close()
			photo = &service.PhotoUpload{
				FileName:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Body:        file,
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit, err := h.visitService.CheckIn(c.Request.Context(), owner, &req, photo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visit)
}
