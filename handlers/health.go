// File: handlers/health.go
package handlers

import (
	"net/http"

	"glospa/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /api/sms/health with the latest dependency snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo && !status.CheckedAt.IsZero() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":       "ok",
		"dependencies": status,
	})
}
