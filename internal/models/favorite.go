package models

import (
	"time"

	"gorm.io/gorm"
)

type Favorite struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index:idx_favorite_pair,unique" json:"user_id"`
	LocationID uint           `gorm:"not null;index:idx_favorite_pair,unique" json:"location_id"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
