package models

import (
	"time"

	"spotline/pkg/geo"

	"gorm.io/gorm"
)

// Alert is a safety incident reported at or near a location. Alerts carry
// their own coordinates (defaulting to the location's) so proximity queries
// work even when the incident happened slightly away from the spot.
type Alert struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	LocationID  uint           `gorm:"not null;index" json:"location_id"`
	Type        string         `gorm:"size:20;not null;index" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	Latitude    float64        `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude   float64        `gorm:"type:decimal(11,8);not null" json:"longitude"`
	Active      bool           `gorm:"default:true;index" json:"active"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}

// GeoPoint implements geo.Locatable.
func (a Alert) GeoPoint() geo.Point {
	return geo.Point{Latitude: a.Latitude, Longitude: a.Longitude}
}
