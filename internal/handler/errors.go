package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskman/internal/apperror"
)

// respondServiceError translates a service error into a transport status.
// Unclassified errors are infrastructure failures and map to 500 without
// leaking details.
func respondServiceError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindBusinessRule:
		status = http.StatusConflict
	case apperror.KindPermissionDenied:
		status = http.StatusForbidden
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
