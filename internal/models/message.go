package models

import (
	"time"

	"gorm.io/gorm"
)

type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"not null;index:idx_messages_pair" json:"sender_id"`
	ReceiverID uint           `gorm:"not null;index:idx_messages_pair" json:"receiver_id"`
	Text       string         `gorm:"type:text;not null" json:"text"`
	Read       bool           `gorm:"default:false;index" json:"read"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}

// Conversation is one row of the conversation list: the peer, the newest
// message, and how many of their messages are still unread.
type Conversation struct {
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username"`
	AvatarURL       string    `json:"avatar_url"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int64     `json:"unread_count"`
}
