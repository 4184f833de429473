// utils/respond.go
package utils

import (
	"net/http"

	"invoicegen-backend/apperrors"

	"github.com/gin-gonic/gin"
)

// RespondWithError sends a JSON error body with the given status.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithAppError maps a service error onto its HTTP status. Anything
// that is not an apperrors.Error is treated as an internal failure without
// leaking its detail to the client.
func RespondWithAppError(c *gin.Context, err error) {
	if appErr := apperrors.As(err); appErr != nil {
		c.JSON(appErr.HTTPStatus(), gin.H{
			"error": appErr.Message(),
			"code":  string(appErr.Kind()),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
