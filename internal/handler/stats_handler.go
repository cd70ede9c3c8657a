package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	taskRepo TaskStore
}

func NewStatsHandler(taskRepo TaskStore) *StatsHandler {
	return &StatsHandler{taskRepo: taskRepo}
}

// Get returns aggregate task counters for the authenticated user
// @Summary      Task statistics
// @Tags         Stats
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} model.Stats
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	stats, err := h.taskRepo.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
