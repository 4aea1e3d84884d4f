package controllers

import (
	"net/http"

	"BudgetPilot/services"
	"BudgetPilot/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	RestaurantService *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{RestaurantService: service}
}

// GetAllRestaurants lists restaurants, topped up with cafés.
func (s *RestaurantController) GetAllRestaurants(c *gin.Context) {
	query, err := parseListingQuery(c, services.DefaultRestaurantLimit)
	if err != nil {
		c.Error(err)
		return
	}

	restaurants := s.RestaurantService.ListRestaurants(query)
	utils.ListResponse(c, http.StatusOK, restaurants)
}
