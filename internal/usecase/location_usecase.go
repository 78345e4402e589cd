package usecase

import (
	"errors"
	"strings"

	"hongmove-frontdesk/internal/converter"
	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/domain/entity"
	"hongmove-frontdesk/internal/domain/repository"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidCategory  = errors.New("invalid location category")
)

type LocationUsecase interface {
	ListLocations(query, category string) (*dto.LocationListResponse, error)
	GetCategories() []dto.CategoryResponse
	FindByName(name string) (*dto.LocationResponse, error)
}

type locationUsecase struct {
	locationRepo repository.LocationRepository
}

func NewLocationUsecase(locationRepo repository.LocationRepository) LocationUsecase {
	return &locationUsecase{
		locationRepo: locationRepo,
	}
}

// ListLocations searches the catalog and optionally narrows the result to one category.
func (u *locationUsecase) ListLocations(query, category string) (*dto.LocationListResponse, error) {
	var c entity.LocationCategory
	if category = strings.TrimSpace(category); category != "" {
		c = entity.LocationCategory(category)
		if !c.IsValid() {
			return nil, ErrInvalidCategory
		}
	}

	var locations []entity.Location
	switch {
	case c != "" && strings.TrimSpace(query) == "":
		locations = u.locationRepo.FindByCategory(c)
	case c != "":
		locations = filterByCategory(u.locationRepo.Search(query), c)
	default:
		locations = u.locationRepo.Search(query)
	}

	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}

func filterByCategory(locations []entity.Location, c entity.LocationCategory) []entity.Location {
	filtered := make([]entity.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Category == c {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

func (u *locationUsecase) GetCategories() []dto.CategoryResponse {
	return converter.CategoriesToResponses(entity.CategoryLabels)
}

func (u *locationUsecase) FindByName(name string) (*dto.LocationResponse, error) {
	location := u.locationRepo.FindByName(name)
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return converter.LocationToResponse(location), nil
}
