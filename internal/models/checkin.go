package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckIn is a user's declared presence at a location. A check-in stays
// active until checkout or until the sweep clears it after the 4h horizon.
type CheckIn struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	LocationID uint           `gorm:"not null;index" json:"location_id"`
	Anonymous  bool           `gorm:"default:true" json:"anonymous"`
	Active     bool           `gorm:"default:true;index" json:"active"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Location Location `gorm:"foreignKey:LocationID" json:"-"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
