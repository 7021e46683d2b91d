package handler

import (
	"net/http"
	"strings"

	"spotline/internal/middleware"
	"spotline/internal/models"
	"spotline/internal/repository"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	msgRepo   *repository.MessageRepository
	userRepo  *repository.UserRepository
	blockRepo *repository.BlockRepository
}

func NewMessageHandler(msgRepo *repository.MessageRepository, userRepo *repository.UserRepository, blockRepo *repository.BlockRepository) *MessageHandler {
	return &MessageHandler{msgRepo: msgRepo, userRepo: userRepo, blockRepo: blockRepo}
}

type sendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text cannot be empty"})
		return
	}
	if req.ReceiverID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot message yourself"})
		return
	}
	receiver, err := h.userRepo.GetByID(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if !receiver.AllowMessages {
		c.JSON(http.StatusForbidden, gin.H{"error": "user does not accept messages"})
		return
	}
	blocked, err := h.blockRepo.IsBlockedEither(userID, req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	if blocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "messaging is not available with this user"})
		return
	}
	msg := &models.Message{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Text:       text,
	}
	if err := h.msgRepo.Create(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Conversation returns the message history with a peer and marks the peer's
// messages as read. Clients poll this endpoint; there is no push channel.
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	peerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit := queryInt(c, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	messages, err := h.msgRepo.Conversation(userID, peerID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}
	if _, err := h.msgRepo.MarkConversationRead(userID, peerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rows, err := h.msgRepo.Conversations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": rows})
}

// MarkRead marks one message read; only the receiver may do so.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updated, err := h.msgRepo.MarkRead(id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark message read"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllRead clears the caller's entire unread backlog.
func (h *MessageHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	n, err := h.msgRepo.MarkAllRead(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark messages read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": n})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	n, err := h.msgRepo.UnreadCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count unread messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

// Delete removes a message for a participant.
func (h *MessageHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.msgRepo.Delete(id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
