package router

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const serviceName = "restaurant-pizza-api"

// indexHandler godoc
// @Summary Index page
// @Tags health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// healthCheckHandler godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := database.Ping(db); err != nil {
			_ = c.Error(err)
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
