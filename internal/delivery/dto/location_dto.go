package dto

type LocationResponse struct {
	ID          string  `json:"id"`
	NameTh      string  `json:"nameTh"`
	NameEn      string  `json:"nameEn"`
	DisplayName string  `json:"displayName"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	IsActive    bool    `json:"isActive"`
}

type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int                `json:"total"`
}

type CategoryResponse struct {
	Category string `json:"category"`
	Th       string `json:"th"`
	En       string `json:"en"`
}
