package repository

import "hongmove-frontdesk/internal/domain/entity"

// LocationRepository is a read-only view over the pickup/dropoff catalog.
// Methods never fail; an absent entry is reported as nil.
type LocationRepository interface {
	FindActive() []entity.Location
	FindByCategory(category entity.LocationCategory) []entity.Location
	Search(query string) []entity.Location
	FindByName(name string) *entity.Location
}
