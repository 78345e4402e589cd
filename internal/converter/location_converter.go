package converter

import (
	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/domain/entity"
)

// LocationToResponse converts a Location entity to LocationResponse DTO
func LocationToResponse(location *entity.Location) *dto.LocationResponse {
	if location == nil {
		return nil
	}

	return &dto.LocationResponse{
		ID:          location.ID,
		NameTh:      location.NameTh,
		NameEn:      location.NameEn,
		DisplayName: location.DisplayName(),
		Category:    string(location.Category),
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		IsActive:    location.IsActive,
	}
}

func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *LocationToResponse(&locations[i])
	}
	return responses
}

func CategoriesToResponses(labels []entity.CategoryLabel) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, 0, len(labels))
	for _, label := range labels {
		responses = append(responses, dto.CategoryResponse{
			Category: string(label.Category),
			Th:       label.Th,
			En:       label.En,
		})
	}
	return responses
}
