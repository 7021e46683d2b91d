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
	"spotline/pkg/stats"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LocationHandler struct {
	locRepo     *repository.LocationRepository
	checkInRepo *repository.CheckInRepository
	commentRepo *repository.CommentRepository
}

func NewLocationHandler(locRepo *repository.LocationRepository, checkInRepo *repository.CheckInRepository, commentRepo *repository.CommentRepository) *LocationHandler {
	return &LocationHandler{locRepo: locRepo, checkInRepo: checkInRepo, commentRepo: commentRepo}
}

// locationWithStats is the list projection: location plus its active-user
// count and, for proximity queries, the derived distance. DistanceKm exists
// only on the payload; it is never written back.
type locationWithStats struct {
	models.Location
	ActiveUsers int64    `json:"active_users"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}
	counts, err := h.locRepo.ActiveCheckInCounts(geo.Cutoff(domain.CheckInHorizon, time.Now()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count check-ins"})
		return
	}
	out := make([]locationWithStats, 0, len(locations))
	for _, loc := range locations {
		out = append(out, locationWithStats{Location: loc, ActiveUsers: counts[loc.ID]})
	}
	c.JSON(http.StatusOK, gin.H{"locations": out, "total": len(out)})
}

// Nearby returns locations within the requested radius of the origin,
// distance-annotated and sorted nearest first.
func (h *LocationHandler) Nearby(c *gin.Context) {
	lat, lng, ok := parseOrigin(c)
	if !ok {
		return
	}
	radius := queryFloat(c, "radius", domain.DefaultLocationRadiusKm)

	locations, err := h.locRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}
	results, err := geo.Nearby(locations, geo.Point{Latitude: lat, Longitude: lng}, radius)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	counts, err := h.locRepo.ActiveCheckInCounts(geo.Cutoff(domain.CheckInHorizon, time.Now()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count check-ins"})
		return
	}
	out := make([]locationWithStats, 0, len(results))
	for _, r := range results {
		d := geo.RoundKm(r.DistanceKm)
		out = append(out, locationWithStats{
			Location:    r.Record,
			ActiveUsers: counts[r.Record.ID],
			DistanceKm:  &d,
		})
	}
	c.JSON(http.StatusOK, gin.H{"locations": out, "total": len(out), "radius": radius})
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	loc, err := h.locRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	checkIns, err := h.checkInRepo.ActiveAtLocation(id, geo.Cutoff(domain.CheckInHorizon, time.Now()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load check-ins"})
		return
	}
	comments, err := h.commentRepo.ListByLocation(id, 20, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"location":     loc,
		"active_users": len(checkIns),
		"comments":     comments,
	})
}

type createLocationRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Description  string  `json:"description"`
	Type         string  `json:"type" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	City         string  `json:"city" binding:"required,max=100"`
	Neighborhood string  `json:"neighborhood" binding:"max=100"`
	Directions   string  `json:"directions"`
	BestHours    string  `json:"best_hours" binding:"max=100"`
	Lighting     string  `json:"lighting"`
}

func (h *LocationHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidLocationType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location type", "valid_types": domain.LocationTypes})
		return
	}
	if req.Lighting == "" {
		req.Lighting = domain.LightingWellLit
	}
	loc := &models.Location{
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Directions:   req.Directions,
		BestHours:    req.BestHours,
		Lighting:     req.Lighting,
		CreatedByID:  userID,
	}
	if err := h.locRepo.Create(loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create location"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": loc})
}

// Rate folds one rating into the location's running mean. The repository
// serializes concurrent submissions, so no rating is lost.
func (h *LocationHandler) Rate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Rating int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	loc, err := h.locRepo.Rate(id, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rating":        loc.Rating,
		"total_ratings": loc.TotalRatings,
	})
}
