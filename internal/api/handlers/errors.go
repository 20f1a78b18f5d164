package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"field-marketing-backend/internal/auth"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TimezoneHeader names the viewer's IANA zone when no tz query is given
const TimezoneHeader = "X-Timezone"

// respondError writes the JSON error for a service error
func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPhotoUploadFailed), errors.Is(err, apperrors.ErrDirectoryFailed):
		logger.WithContext(c.Request.Context()).Errorf("Upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).Errorf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// requireOwner returns the signed-in owner key or writes 401
func requireOwner(c *gin.Context) (string, bool) {
	owner, ok := auth.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrOwnerNotInContext.Error()})
		return "", false
	}
	return owner, true
}

// viewerLocation resolves the viewer calendar from the tz query parameter,
// then the X-Timezone header, then def
func viewerLocation(c *gin.Context, def *time.Location) (*time.Location, error) {
	name := strings.TrimSpace(c.Query("tz"))
	if name == "" {
		name = strings.TrimSpace(c.GetHeader(TimezoneHeader))
	}
	if name == "" {
		if def == nil {
			return time.UTC, nil
		}
		return def, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperrors.ErrInvalidTimezone
	}
	return loc, nil
}
