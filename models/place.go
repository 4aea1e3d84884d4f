package models

// Attraction is a normalized row of the national tourist-attraction dataset.
type Attraction struct {
	Index        int
	Name         string
	RoadAddress  string
	LotAddress   string
	Introduction string
	ParkingCount string
}

// SearchAddress is the text keyword filtering runs against: both raw
// address columns joined by a space.
func (a Attraction) SearchAddress() string {
	return a.RoadAddress + " " + a.LotAddress
}

// Eatery is a normalized restaurant or café row. Address is already the
// composite address.
type Eatery struct {
	Index    int
	Name     string
	Address  string
	Category string
}

// AttractionListing is the API shape of one attraction.
type AttractionListing struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	Price        int     `json:"price"`
	ParkingCount int     `json:"parkingCount"`
}

// RestaurantListing is the API shape of one restaurant or café.
type RestaurantListing struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Price       int     `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// ListingQuery carries the parsed query parameters shared by the listing
// endpoints. A nil MaxPrice means no ceiling.
type ListingQuery struct {
	Keyword  string
	MaxPrice *int
	Limit    int
}
