package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	LocationID uint           `gorm:"not null;index" json:"location_id"`
	Text       string         `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
