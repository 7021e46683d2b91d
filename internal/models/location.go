package models

import (
	"time"

	"spotline/pkg/geo"
	"spotline/pkg/stats"

	"gorm.io/gorm"
)

// Location is a discoverable point of interest. Separate lat/lng columns
// keep Haversine queries portable across MySQL versions.
type Location struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	Type         string  `gorm:"size:20;not null;index" json:"type"`
	Latitude     float64 `gorm:"type:decimal(10,8);not null;index:idx_locations_lat_lng" json:"latitude"`
	Longitude    float64 `gorm:"type:decimal(11,8);not null;index:idx_locations_lat_lng" json:"longitude"`
	City         string  `gorm:"size:100;not null;index" json:"city"`
	Neighborhood string  `gorm:"size:100" json:"neighborhood"`
	Directions   string  `gorm:"type:text" json:"directions"`
	BestHours    string  `gorm:"size:100" json:"best_hours"`
	Lighting     string  `gorm:"size:20;default:'well_lit'" json:"lighting"`
	IsDangerous  bool    `gorm:"default:false" json:"is_dangerous"`

	// Rating accumulator state. Updated only through LocationRepository.Rate.
	Rating       float64 `gorm:"type:decimal(4,2);default:0" json:"rating"`
	TotalRatings int64   `gorm:"default:0" json:"total_ratings"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CreatedByID uint `gorm:"index" json:"created_by_id"`
}

func (Location) TableName() string {
	return "locations"
}

// GeoPoint implements geo.Locatable.
func (l Location) GeoPoint() geo.Point {
	return geo.Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

// RatingState returns the accumulator view of the stored rating.
func (l Location) RatingState() stats.Rating {
	return stats.Rating{Mean: l.Rating, Total: l.TotalRatings}
}
