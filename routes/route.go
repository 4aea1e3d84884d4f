package route

import (
	"BudgetPilot/controllers"
	"BudgetPilot/handlers"
	"BudgetPilot/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes over the given dataset source.
func RegisterRoutes(router *gin.Engine, store *services.DatasetStore) {
	pricing := services.PlaceholderPricing{}

	attractionHandler := controllers.NewAttractionController(services.NewAttractionService(store, pricing))
	restaurantHandler := controllers.NewRestaurantController(services.NewRestaurantService(store, pricing))
	healthHandler := controllers.NewHealthController(store)

	handlers.RegisterAttractionRoutes(router, attractionHandler)
	handlers.RegisterRestaurantRoutes(router, restaurantHandler)
	handlers.RegisterHealthRoutes(router, healthHandler)
}
