package services

// Dataset names one CSV-backed collection.
type Dataset string

const (
	DatasetAttractions Dataset = "attractions"
	DatasetRestaurants Dataset = "restaurants"
	DatasetCafes       Dataset = "cafes"
)

// Column allowlists of the government open-data exports.
var (
	AttractionColumns = []string{
		"관광지명",
		"소재지도로명주소",
		"소재지지번주소",
		"관광지소개",
		"주차가능수",
		"관리기관전화번호",
	}
	RestaurantColumns = []string{"사업장명", "도로명주소", "지번주소", "업태구분명"}
	CafeColumns       = []string{"사업장명", "시도명", "시군구명", "소재지도로명주소"}
)

// Placeholder images, one per dataset.
const (
	AttractionImage = "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800"
	RestaurantImage = "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800"
	CafeImage       = "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800"
)
