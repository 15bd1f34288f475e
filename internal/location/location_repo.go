// internal/location/location_repo.go
package location

import "gorm.io/gorm"

// LocationRepository interface defines all database operations for locations
type LocationRepository interface {
	ListLocations() ([]Location, error)
	CreateLocation(loc *Location) error
	SeedDefaults() error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) ListLocations() ([]Location, error) {
	var locations []Location
	if err := r.db.Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) CreateLocation(loc *Location) error {
	return r.db.Create(loc).Error
}

// SeedDefaults inserts the standard facility spots when the table is empty.
func (r *locationRepository) SeedDefaults() error {
	var count int64
	if err := r.db.Model(&Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	locations := make([]Location, 0, len(DefaultLocations))
	for _, name := range DefaultLocations {
		locations = append(locations, Location{Name: name})
	}
	return r.db.Create(&locations).Error
}
