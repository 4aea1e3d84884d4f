package handlers

import (
	"BudgetPilot/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router gin.IRouter, healthController *controllers.HealthController) {
	router.GET("/healthz", healthController.Health)
}
