package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"BudgetPilot/models"
	"BudgetPilot/services"
	"BudgetPilot/utils"

	"github.com/gin-gonic/gin"
)

// parseListingQuery reads city_keyword, max_price and limit. A malformed
// max_price is rejected; a malformed limit falls back to defaultLimit.
func parseListingQuery(c *gin.Context, defaultLimit int) (models.ListingQuery, error) {
	q := models.ListingQuery{
		Keyword: strings.TrimSpace(c.Query("city_keyword")),
		Limit:   defaultLimit,
	}

	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return q, utils.NewCustomError(http.StatusUnprocessableEntity, "max_price must be an integer")
		}
		q.MaxPrice = &v
	}

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			q.Limit = v
		}
	}
	q.Limit = services.ClampLimit(q.Limit)
	return q, nil
}
