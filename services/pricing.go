package services

import "math"

// Quote is the synthesized commercial data of one listing.
type Quote struct {
	Price       int
	Rating      float64
	ReviewCount int
}

// PricingProvider supplies price, rating and review count for a source row.
// index is the row's position in its source file.
type PricingProvider interface {
	Quote(dataset Dataset, index int) Quote
}

const (
	restaurantBasePrice = 12000
	cafeBasePrice       = 8000
	priceStep           = 2000
	// cafeIndexOffset keeps café values from lining up with restaurants
	// at the same file position.
	cafeIndexOffset = 10000

	attractionRating = 4.3
)

// PlaceholderPricing derives repeating values from the row index. There is
// no real pricing or review data behind it.
type PlaceholderPricing struct{}

func (PlaceholderPricing) Quote(dataset Dataset, index int) Quote {
	switch dataset {
	case DatasetAttractions:
		return Quote{Price: 0, Rating: attractionRating, ReviewCount: 0}
	case DatasetCafes:
		return eateryQuote(cafeBasePrice, index+cafeIndexOffset)
	default:
		return eateryQuote(restaurantBasePrice, index)
	}
}

func eateryQuote(base, idx int) Quote {
	return Quote{
		Price:       base + (idx%5)*priceStep,
		Rating:      math.Round((3.5+float64(idx%15)/10)*10) / 10,
		ReviewCount: 50 + idx%200,
	}
}
