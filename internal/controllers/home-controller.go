package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Index serves the static landing page
// @Summary Landing page
// @Tags home
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Pizza Place</h1>"))
}

// HealthCheck handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-place-api",
	})
}
