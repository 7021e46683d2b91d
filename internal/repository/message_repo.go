package repository

import (
	"spotline/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(m *models.Message) error {
	return r.db.Create(m).Error
}

func (r *MessageRepository) GetByID(id uint) (*models.Message, error) {
	var m models.Message
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Conversation returns the message history between two users, newest first.
func (r *MessageRepository) Conversation(userID, peerID uint, limit, offset int) ([]models.Message, error) {
	var list []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

// MarkConversationRead marks everything the peer sent to the user as read
// and returns how many messages were affected.
func (r *MessageRepository) MarkConversationRead(userID, peerID uint) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND `read` = ?", userID, peerID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

// MarkRead marks a single message read; only the receiver may do so.
func (r *MessageRepository) MarkRead(id, receiverID uint) (bool, error) {
	res := r.db.Model(&models.Message{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("read", true)
	return res.RowsAffected > 0, res.Error
}

// MarkAllRead marks every unread message addressed to the user as read.
func (r *MessageRepository) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND `read` = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *MessageRepository) UnreadCount(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND `read` = ?", userID, false).
		Count(&n).Error
	return n, err
}

// Conversations builds the conversation list: one row per peer with the
// latest message and the unread count. Raw SQL; the grouping is awkward to
// express through the query builder.
func (r *MessageRepository) Conversations(userID uint) ([]models.Conversation, error) {
	var rows []models.Conversation
	err := r.db.Raw(`
SELECT
    u.id          AS user_id,
    u.username    AS username,
    u.avatar_url  AS avatar_url,
    m.text        AS last_message,
    m.created_at  AS last_message_time,
    (SELECT COUNT(*) FROM messages
      WHERE receiver_id = ? AND sender_id = u.id
        AND `+"`read`"+` = FALSE AND deleted_at IS NULL) AS unread_count
FROM messages m
JOIN users u
  ON u.id = IF(m.sender_id = ?, m.receiver_id, m.sender_id)
WHERE (m.sender_id = ? OR m.receiver_id = ?)
  AND m.deleted_at IS NULL
  AND m.created_at = (
      SELECT MAX(m2.created_at) FROM messages m2
      WHERE m2.deleted_at IS NULL
        AND ((m2.sender_id = m.sender_id AND m2.receiver_id = m.receiver_id)
          OR (m2.sender_id = m.receiver_id AND m2.receiver_id = m.sender_id))
  )
ORDER BY m.created_at DESC`,
		userID, userID, userID, userID).Scan(&rows).Error
	return rows, err
}

// Delete removes a message if the user is a participant. Returns false when
// no such message exists for the user.
func (r *MessageRepository) Delete(id, userID uint) (bool, error) {
	res := r.db.
		Where("id = ? AND (sender_id = ? OR receiver_id = ?)", id, userID, userID).
		Delete(&models.Message{})
	return res.RowsAffected > 0, res.Error
}
