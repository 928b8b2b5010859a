package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is the reported API version.
const Version = "1.0.0"

// Health handles GET /health - unauthenticated liveness probe
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "API is running",
		"version":   Version,
	})
}
