package utils

import "github.com/gin-gonic/gin"

// Notification severities surfaced to the client toast system.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// Notice is a transient user-facing notification.
type Notice struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message, "notice": Notice{Message: message, Severity: SeverityError}})
}

// JSONNotice is a success response carrying a toast alongside the data.
func JSONNotice(c *gin.Context, code int, data interface{}, message, severity string) {
	c.JSON(code, gin.H{"success": true, "data": data, "notice": Notice{Message: message, Severity: severity}})
}
