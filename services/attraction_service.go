package services

import (
	"fmt"
	"strings"

	"BudgetPilot/models"
	"BudgetPilot/utils"
)

const attractionLocationLen = 120

type AttractionService struct {
	Source  DatasetSource
	Pricing PricingProvider
}

// NewAttractionService wires the service to its dataset source. A nil
// pricing provider falls back to PlaceholderPricing.
func NewAttractionService(source DatasetSource, pricing PricingProvider) *AttractionService {
	if pricing == nil {
		pricing = PlaceholderPricing{}
	}
	return &AttractionService{Source: source, Pricing: pricing}
}

// ListAttractions filters attractions by keyword and shapes at most limit of
// them into listings. Only the first limit matching rows are examined.
func (s *AttractionService) ListAttractions(q models.ListingQuery) []models.AttractionListing {
	limit := ClampLimit(q.Limit)
	keyword := strings.TrimSpace(q.Keyword)
	results := make([]models.AttractionListing, 0)

	examined := 0
	for _, a := range s.Source.Attractions() {
		if examined >= limit {
			break
		}
		if !matchKeyword(a.SearchAddress(), keyword) {
			continue
		}
		examined++

		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		quote := s.Pricing.Quote(DatasetAttractions, a.Index)
		if q.MaxPrice != nil && quote.Price > *q.MaxPrice {
			continue
		}

		location := utils.JoinTrimmed(a.RoadAddress, a.LotAddress)
		if location == "" {
			location = name
		}
		description := strings.TrimSpace(a.Introduction)
		if description == "" {
			description = name + " 관광명소입니다."
		}

		results = append(results, models.AttractionListing{
			ID:           fmt.Sprintf("attr-%d", a.Index),
			Name:         name,
			Location:     utils.Truncate(location, attractionLocationLen),
			Description:  description,
			Image:        AttractionImage,
			Rating:       quote.Rating,
			ReviewCount:  quote.ReviewCount,
			Price:        quote.Price,
			ParkingCount: ParseCount(a.ParkingCount),
		})
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
