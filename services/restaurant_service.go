package services

import (
	"fmt"
	"strings"

	"BudgetPilot/models"
	"BudgetPilot/utils"
)

const (
	restaurantLocationLen    = 80
	restaurantDescriptionLen = 50

	defaultRestaurantType = "식당"
	cafeType              = "카페"
)

type RestaurantService struct {
	Source  DatasetSource
	Pricing PricingProvider
}

// NewRestaurantService wires the service to its dataset source. A nil
// pricing provider falls back to PlaceholderPricing.
func NewRestaurantService(source DatasetSource, pricing PricingProvider) *RestaurantService {
	if pricing == nil {
		pricing = PlaceholderPricing{}
	}
	return &RestaurantService{Source: source, Pricing: pricing}
}

// listingBuilder accumulates one response, suppressing repeated names.
type listingBuilder struct {
	pricing  PricingProvider
	maxPrice *int
	seen     map[string]struct{}
	results  []models.RestaurantListing
}

// ListRestaurants returns restaurants first and tops up with cafés when the
// restaurant pass left room. Each pass examines at most its remaining budget
// of matching rows; rows rejected for a repeated name or for price use up a
// row of that window but not a result slot.
func (s *RestaurantService) ListRestaurants(q models.ListingQuery) []models.RestaurantListing {
	limit := ClampLimit(q.Limit)
	keyword := strings.TrimSpace(q.Keyword)
	b := &listingBuilder{
		pricing:  s.Pricing,
		maxPrice: q.MaxPrice,
		seen:     make(map[string]struct{}),
		results:  make([]models.RestaurantListing, 0),
	}

	for _, e := range window(s.Source.Restaurants(), keyword, limit) {
		typ := e.Category
		if typ == "" {
			typ = defaultRestaurantType
		}
		b.add(e, typ, DatasetRestaurants, RestaurantImage)
	}

	if remaining := limit - len(b.results); remaining > 0 {
		for _, e := range window(s.Source.Cafes(), keyword, remaining) {
			b.add(e, cafeType, DatasetCafes, CafeImage)
		}
	}

	if len(b.results) > limit {
		b.results = b.results[:limit]
	}
	return b.results
}

// window returns the first n rows whose address matches keyword.
func window(rows []models.Eatery, keyword string, n int) []models.Eatery {
	out := make([]models.Eatery, 0, min(n, len(rows)))
	for _, e := range rows {
		if len(out) >= n {
			break
		}
		if matchKeyword(e.Address, keyword) {
			out = append(out, e)
		}
	}
	return out
}

func (b *listingBuilder) add(e models.Eatery, typ string, d Dataset, image string) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return
	}
	if _, dup := b.seen[name]; dup {
		return
	}
	b.seen[name] = struct{}{}

	quote := b.pricing.Quote(d, e.Index)
	if b.maxPrice != nil && quote.Price > *b.maxPrice {
		return
	}

	addr := strings.TrimSpace(e.Address)
	b.results = append(b.results, models.RestaurantListing{
		ID:          fmt.Sprintf("rest-%d", len(b.results)),
		Name:        name,
		Type:        typ,
		Location:    utils.Truncate(addr, restaurantLocationLen),
		Price:       quote.Price,
		Description: fmt.Sprintf("%s입니다. %s", typ, utils.Truncate(addr, restaurantDescriptionLen)),
		Image:       image,
		Rating:      quote.Rating,
		ReviewCount: quote.ReviewCount,
	})
}
