package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "eventlink.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		// Default to Internal Server Error if not an AppError
		appErr = domainerrors.InternalError(err)
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if appErr.RetryAfterDays > 0 {
		body["retryAfterDays"] = appErr.RetryAfterDays
		// Cooldowns are measured in days; surface the standard header in seconds
		c.Header("Retry-After", strconv.Itoa(appErr.RetryAfterDays*24*60*60))
	}

	c.JSON(appErr.Status, body)
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
