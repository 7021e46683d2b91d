package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string  `gorm:"size:255" json:"-"`
	GoogleID     *string `gorm:"uniqueIndex;size:255" json:"-"` // nil for email signups (avoids duplicate '' on unique index)
	Bio          string  `gorm:"type:text" json:"bio"`
	AvatarURL    string  `gorm:"size:512" json:"avatar_url"`
	City         string  `gorm:"size:100" json:"city"`

	// Privacy and notification settings.
	IsVisible          bool `gorm:"default:true" json:"is_visible"`
	ShowOnline         bool `gorm:"default:true" json:"show_online"`
	AllowMessages      bool `gorm:"default:true" json:"allow_messages"`
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`

	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the projection of a user safe to embed in other payloads.
type PublicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Public strips private fields for embedding in comments, alerts, etc.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL}
}
