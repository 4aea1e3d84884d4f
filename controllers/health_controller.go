package controllers

import (
	"net/http"

	"BudgetPilot/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *services.DatasetStore
}

func NewHealthController(store *services.DatasetStore) *HealthController {
	return &HealthController{Store: store}
}

// Health reports liveness and whatever datasets have been loaded so far.
func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"datasets": h.Store.Stats(),
	})
}
