package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
)

// Fail writes the failure envelope. Every error path goes through here so
// clients always see {success, message} regardless of what broke.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// FailValidation reports schema violations with per-field detail.
func FailValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

// HandleError maps a service error onto the envelope. Internal details are
// never echoed to the caller; they are logged server-side only. Handlers
// that can name the missing resource translate not-found themselves before
// delegating here.
func HandleError(c *gin.Context, err error) {
	switch {
	case customErrors.IsInvalidCredentials(err):
		Fail(c, http.StatusUnauthorized, "Invalid credentials")
	case customErrors.IsAccountDeactivated(err):
		Fail(c, http.StatusForbidden, "Account is deactivated")
	case customErrors.IsInvalidCurrentPassword(err):
		Fail(c, http.StatusBadRequest, "Current password is incorrect")
	case customErrors.IsAlreadyExists(err):
		Fail(c, http.StatusConflict, "Email already registered")
	case customErrors.IsInvalidToken(err):
		Fail(c, http.StatusUnauthorized, "Invalid or expired token")
	case customErrors.IsInvalidArgument(err):
		Fail(c, http.StatusBadRequest, err.Error())
	case customErrors.IsNotFound(err):
		Fail(c, http.StatusNotFound, "Resource not found")
	default:
		// Surface the cause to the request logger, not to the client.
		_ = c.Error(err)
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
