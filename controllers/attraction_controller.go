package controllers

import (
	"net/http"

	"BudgetPilot/services"
	"BudgetPilot/utils"

	"github.com/gin-gonic/gin"
)

type AttractionController struct {
	AttractionService *services.AttractionService
}

func NewAttractionController(service *services.AttractionService) *AttractionController {
	return &AttractionController{AttractionService: service}
}

func (a *AttractionController) GetAllAttractions(c *gin.Context) {
	query, err := parseListingQuery(c, services.DefaultAttractionLimit)
	if err != nil {
		c.Error(err) // handled by ErrorHandlerMiddleware
		return
	}

	attractions := a.AttractionService.ListAttractions(query)
	utils.ListResponse(c, http.StatusOK, attractions)
}
