package entity

// LocationCategory groups catalog entries for the pickup/dropoff pickers.
type LocationCategory string

const (
	LocationCategoryAirport      LocationCategory = "airport"
	LocationCategoryTrainStation LocationCategory = "train_station"
	LocationCategoryBusTerminal  LocationCategory = "bus_terminal"
	LocationCategoryHotel        LocationCategory = "hotel"
	LocationCategoryShopping     LocationCategory = "shopping"
	LocationCategoryLandmark     LocationCategory = "landmark"
	LocationCategoryPort         LocationCategory = "port"
)

// CategoryLabel holds the bilingual label of a category.
type CategoryLabel struct {
	Category LocationCategory
	Th       string
	En       string
}

// CategoryLabels lists every category in display order.
var CategoryLabels = []CategoryLabel{
	{Category: LocationCategoryAirport, Th: "สนามบิน", En: "Airports"},
	{Category: LocationCategoryTrainStation, Th: "สถานีรถไฟ", En: "Train Stations"},
	{Category: LocationCategoryBusTerminal, Th: "สถานีขนส่ง", En: "Bus Terminals"},
	{Category: LocationCategoryHotel, Th: "โรงแรม", En: "Hotels"},
	{Category: LocationCategoryShopping, Th: "ห้างสรรพสินค้า", En: "Shopping Centers"},
	{Category: LocationCategoryLandmark, Th: "สถานที่ท่องเที่ยว", En: "Landmarks"},
	{Category: LocationCategoryPort, Th: "ท่าเรือ", En: "Ports & Piers"},
}

// IsValid checks if the category is one of the seven catalog categories
func (c LocationCategory) IsValid() bool {
	for _, label := range CategoryLabels {
		if label.Category == c {
			return true
		}
	}
	return false
}

// Location is a static pickup/dropoff point.
type Location struct {
	ID        string
	NameTh    string
	NameEn    string
	Category  LocationCategory
	Latitude  float64
	Longitude float64
	IsActive  bool
}

// DisplayName returns the Thai name followed by the English name in parentheses
func (l *Location) DisplayName() string {
	return l.NameTh + " (" + l.NameEn + ")"
}
