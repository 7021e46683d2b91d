package handler

import (
	"net/http"
	"strings"

	"spotline/internal/middleware"
	"spotline/internal/models"
	"spotline/internal/repository"
	"spotline/internal/service"
	"spotline/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserHandler struct {
	userRepo  *repository.UserRepository
	blockRepo *repository.BlockRepository
	authSvc   *service.AuthService
	uploads   cloudinary.Client
}

func NewUserHandler(userRepo *repository.UserRepository, blockRepo *repository.BlockRepository, authSvc *service.AuthService, uploads cloudinary.Client) *UserHandler {
	return &UserHandler{userRepo: userRepo, blockRepo: blockRepo, authSvc: authSvc, uploads: uploads}
}

// GetProfile returns another user's public profile. Blocked users see the
// same 404 as a missing account.
func (h *UserHandler) GetProfile(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	u, err := h.userRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if callerID != id {
		blocked, err := h.blockRepo.IsBlockedEither(callerID, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
			return
		}
		if blocked || !u.IsVisible {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"bio":        u.Bio,
			"avatar_url": u.AvatarURL,
			"city":       u.City,
			"created_at": u.CreatedAt,
		},
	})
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	City     *string `json:"city"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if len(username) < 3 || len(username) > 64 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username must be 3-64 characters"})
			return
		}
		if username != u.Username {
			if existing, err := h.userRepo.GetByUsername(username); err == nil && existing.ID != userID {
				c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
				return
			} else if err != nil && err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
				return
			}
			u.Username = username
		}
	}
	if req.Bio != nil {
		u.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.City != nil {
		u.City = strings.TrimSpace(*req.City)
	}
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) GetSettings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settings": gin.H{
			"is_visible":          u.IsVisible,
			"show_online":         u.ShowOnline,
			"allow_messages":      u.AllowMessages,
			"email_notifications": u.EmailNotifications,
			"push_notifications":  u.PushNotifications,
		},
	})
}

type updateSettingsRequest struct {
	IsVisible          *bool `json:"is_visible"`
	ShowOnline         *bool `json:"show_online"`
	AllowMessages      *bool `json:"allow_messages"`
	EmailNotifications *bool `json:"email_notifications"`
	PushNotifications  *bool `json:"push_notifications"`
}

// UpdateSettings applies a partial update; absent fields keep their value.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if req.IsVisible != nil {
		u.IsVisible = *req.IsVisible
	}
	if req.ShowOnline != nil {
		u.ShowOnline = *req.ShowOnline
	}
	if req.AllowMessages != nil {
		u.AllowMessages = *req.AllowMessages
	}
	if req.EmailNotifications != nil {
		u.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		u.PushNotifications = *req.PushNotifications
	}
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const maxAvatarBytes = 5 << 20

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads are not configured"})
		return
	}
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar too large (max 5MB)"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read avatar"})
		return
	}
	defer f.Close()

	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	publicID := uuid.New().String()
	url, thumbURL, err := h.uploads.UploadImage(c.Request.Context(), f, "spotline/avatars", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload avatar"})
		return
	}
	u.AvatarURL = url
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"avatar_url":    url,
		"thumbnail_url": thumbURL,
	})
}

func (h *UserHandler) Block(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if targetID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot block yourself"})
		return
	}
	if _, err := h.userRepo.GetByID(targetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	already, err := h.blockRepo.IsBlocked(userID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to block user"})
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.blockRepo.Create(&models.Block{BlockerID: userID, BlockedID: targetID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to block user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *UserHandler) Unblock(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	removed, err := h.blockRepo.Delete(userID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unblock user"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "user is not blocked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *UserHandler) ListBlocked(c *gin.Context) {
	userID := middleware.GetUserID(c)
	blocks, err := h.blockRepo.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blocked users"})
		return
	}
	out := make([]models.PublicUser, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Blocked.Public())
	}
	c.JSON(http.StatusOK, gin.H{"blocked": out})
}

type deleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeleteAccount soft-deletes the caller's account after re-verifying the
// password.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.authSvc.VerifyPassword(userID, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "password is incorrect"})
		return
	}
	if err := h.userRepo.SoftDelete(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
