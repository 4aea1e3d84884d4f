package handlers

import (
	"BudgetPilot/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRestaurantRoutes(router gin.IRouter, restaurantController *controllers.RestaurantController) {
	restaurantGroup := router.Group("/restaurants")
	{
		restaurantGroup.GET("", restaurantController.GetAllRestaurants)
		restaurantGroup.GET("/", restaurantController.GetAllRestaurants)
	}
}
