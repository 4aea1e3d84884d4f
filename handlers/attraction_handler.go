package handlers

import (
	"BudgetPilot/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAttractionRoutes(router gin.IRouter, attractionController *controllers.AttractionController) {
	attractionGroup := router.Group("/attractions")
	{
		// Both forms are registered so neither redirects
		attractionGroup.GET("", attractionController.GetAllAttractions)
		attractionGroup.GET("/", attractionController.GetAllAttractions)
	}
}
