package handler

import (
	"net/http"

	"spotline/internal/middleware"
	"spotline/internal/models"
	"spotline/internal/repository"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favRepo *repository.FavoriteRepository
	locRepo *repository.LocationRepository
}

func NewFavoriteHandler(favRepo *repository.FavoriteRepository, locRepo *repository.LocationRepository) *FavoriteHandler {
	return &FavoriteHandler{favRepo: favRepo, locRepo: locRepo}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.locRepo.GetByID(locationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	exists, err := h.favRepo.Exists(userID, locationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.favRepo.Add(&models.Favorite{UserID: userID, LocationID: locationID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := middleware.GetUserID(c)
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	removed, err := h.favRepo.Remove(userID, locationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit := queryInt(c, "limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	favorites, err := h.favRepo.List(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	total, err := h.favRepo.Count(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// Check reports whether a location is in the caller's favorites.
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID := middleware.GetUserID(c)
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	exists, err := h.favRepo.Exists(userID, locationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": exists})
}
