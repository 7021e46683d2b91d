package handler

import (
	"errors"
	"net/http"
	"time"

	"spotline/internal/domain"
	"spotline/internal/middleware"
	"spotline/internal/models"
	"spotline/internal/repository"
	"spotline/pkg/geo"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CheckInHandler struct {
	checkInRepo *repository.CheckInRepository
	locRepo     *repository.LocationRepository
}

func NewCheckInHandler(checkInRepo *repository.CheckInRepository, locRepo *repository.LocationRepository) *CheckInHandler {
	return &CheckInHandler{checkInRepo: checkInRepo, locRepo: locRepo}
}

type createCheckInRequest struct {
	LocationID uint  `json:"location_id" binding:"required"`
	Anonymous  *bool `json:"anonymous"`
}

// Create checks the user in, replacing any previous active check-in; a user
// is present at one location at a time.
func (h *CheckInHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req createCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.locRepo.GetByID(req.LocationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	if err := h.checkInRepo.DeactivateForUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
		return
	}
	anonymous := true
	if req.Anonymous != nil {
		anonymous = *req.Anonymous
	}
	checkIn := &models.CheckIn{
		UserID:     userID,
		LocationID: req.LocationID,
		Anonymous:  anonymous,
		Active:     true,
	}
	if err := h.checkInRepo.Create(checkIn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"check_in": checkIn})
}

// Checkout deactivates the user's active check-in.
func (h *CheckInHandler) Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if _, err := h.checkInRepo.GetActiveByUser(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active check-in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}
	if err := h.checkInRepo.DeactivateForUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MyActive returns the user's active check-in with its location, or null.
func (h *CheckInHandler) MyActive(c *gin.Context) {
	userID := middleware.GetUserID(c)
	checkIn, err := h.checkInRepo.GetActiveByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"check_in": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load check-in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"check_in": checkIn,
		"location": checkIn.Location,
	})
}

// presentUser is one row of a location's presence listing. Anonymous
// check-ins hide the user entirely.
type presentUser struct {
	Anonymous   bool               `json:"anonymous"`
	CheckedInAt time.Time          `json:"checked_in_at"`
	User        *models.PublicUser `json:"user"`
}

// ActiveAtLocation lists who is currently checked in at a location. Only
// check-ins inside the 4h horizon count, regardless of sweep timing.
func (h *CheckInHandler) ActiveAtLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	checkIns, err := h.checkInRepo.ActiveAtLocation(locationID, geo.Cutoff(domain.CheckInHorizon, time.Now()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load check-ins"})
		return
	}
	users := make([]presentUser, 0, len(checkIns))
	for _, ci := range checkIns {
		row := presentUser{Anonymous: ci.Anonymous, CheckedInAt: ci.CreatedAt}
		if !ci.Anonymous {
			pub := ci.User.Public()
			row.User = &pub
		}
		users = append(users, row)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
