package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const appVersion = "1.0.0"

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the liveness probe payload
type HealthResponse struct {
	Status         string  `json:"status"`
	Database       string  `json:"database"`
	Version        string  `json:"version"`
	Timestamp      string  `json:"timestamp"`
	ResponseTimeMs float64 `json:"response_time_ms"`
}

// Check reports liveness and database connectivity. Returns 503 when the
// database ping fails so the load balancer takes the instance out of rotation.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Failure      503 {object} handler.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	start := time.Now()

	response := HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Version:   appVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	var one int
	err := h.db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error
	if err != nil {
		response.Status = "unhealthy"
		response.Database = "error: " + err.Error()
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000
	response.ResponseTimeMs = math.Round(elapsed*100) / 100

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
