package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"spotline/internal/cache"
	"spotline/internal/domain"
	"spotline/internal/middleware"
	"spotline/internal/models"
	"spotline/internal/repository"
	"spotline/pkg/geo"
	"spotline/pkg/stats"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertRepo *repository.AlertRepository
	locRepo   *repository.LocationRepository
	cache     *cache.Cache
}

func NewAlertHandler(alertRepo *repository.AlertRepository, locRepo *repository.LocationRepository, cch *cache.Cache) *AlertHandler {
	return &AlertHandler{alertRepo: alertRepo, locRepo: locRepo, cache: cch}
}

type createAlertRequest struct {
	LocationID  uint     `json:"location_id" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (h *AlertHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req createAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidAlertType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert type", "valid_types": domain.AlertTypes})
		return
	}
	if len(req.Description) > domain.MaxAlertDescriptionLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description too long (max 500 characters)"})
		return
	}
	loc, err := h.locRepo.GetByID(req.LocationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	// The incident may have happened slightly away from the spot; fall back
	// to the location's own coordinates.
	lat, lng := loc.Latitude, loc.Longitude
	if req.Latitude != nil && req.Longitude != nil {
		lat, lng = *req.Latitude, *req.Longitude
	}
	alert := &models.Alert{
		UserID:      userID,
		LocationID:  req.LocationID,
		Type:        req.Type,
		Description: req.Description,
		Latitude:    lat,
		Longitude:   lng,
		Active:      true,
	}
	if err := h.alertRepo.Create(alert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create alert"})
		return
	}
	h.cache.InvalidateSafetyStats(c.Request.Context(), req.LocationID)

	full, err := h.alertRepo.GetByID(alert.ID)
	if err != nil {
		full = alert
	}
	c.JSON(http.StatusCreated, gin.H{"alert": full})
}

// alertWithDistance is the proximity projection of an alert.
type alertWithDistance struct {
	models.Alert
	DistanceKm float64 `json:"distance_km"`
}

// Nearby returns active alerts within the radius created inside the recent
// window, nearest first, with a by-type breakdown.
func (h *AlertHandler) Nearby(c *gin.Context) {
	lat, lng, ok := parseOrigin(c)
	if !ok {
		return
	}
	radius := queryFloat(c, "radius", domain.DefaultAlertRadiusKm)
	hours := queryInt(c, "hours", 24)

	cutoff := geo.Cutoff(time.Duration(hours)*time.Hour, time.Now())
	alerts, err := h.alertRepo.ListActiveSince(cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}
	results, err := geo.Nearby(alerts, geo.Point{Latitude: lat, Longitude: lng}, radius)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]alertWithDistance, 0, len(results))
	for _, r := range results {
		out = append(out, alertWithDistance{Alert: r.Record, DistanceKm: geo.RoundKm(r.DistanceKm)})
	}
	byType := stats.CountByKey(out, func(a alertWithDistance) string { return a.Type })
	c.JSON(http.StatusOK, gin.H{
		"alerts":  out,
		"total":   len(out),
		"by_type": byType,
		"radius":  radius,
		"hours":   hours,
	})
}

// ForLocation lists a location's active alerts inside the window.
func (h *AlertHandler) ForLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hours := queryInt(c, "hours", 24)
	cutoff := geo.Cutoff(time.Duration(hours)*time.Hour, time.Now())
	alerts, err := h.alertRepo.ListActiveByLocationSince(locationID, cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}
	byType := stats.CountByKey(alerts, func(a models.Alert) string { return a.Type })
	c.JSON(http.StatusOK, gin.H{
		"alerts":  alerts,
		"total":   len(alerts),
		"by_type": byType,
	})
}

// Dismiss deactivates an alert; only its author may do so.
func (h *AlertHandler) Dismiss(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	alert, err := h.alertRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	if alert.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can dismiss this alert"})
		return
	}
	if err := h.alertRepo.Dismiss(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to dismiss alert"})
		return
	}
	h.cache.InvalidateSafetyStats(c.Request.Context(), alert.LocationID)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type safetyStatsResponse struct {
	Location struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"location"`
	Alerts struct {
		Last24h  int64            `json:"last_24h"`
		LastWeek int64            `json:"last_week"`
		ByType   *stats.KeyCounts `json:"by_type"`
	} `json:"alerts"`
	SafetyLevel string `json:"safety_level"`
}

// SafetyStats summarizes recent incident density at a location. The payload
// is cached for a short TTL; staleness is bounded by the cache expiry plus
// explicit invalidation on new alerts and dismissals.
func (h *AlertHandler) SafetyStats(c *gin.Context) {
	locationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if raw, hit := h.cache.GetSafetyStats(ctx, locationID); hit {
		c.Data(http.StatusOK, "application/json", raw)
		return
	}

	loc, err := h.locRepo.GetByID(locationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	now := time.Now()
	last24h, err := h.alertRepo.CountActiveByLocationSince(locationID, geo.Cutoff(domain.AlertHorizon, now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	weekAlerts, err := h.alertRepo.ListActiveByLocationSince(locationID, geo.Cutoff(domain.AlertRetention, now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	var resp safetyStatsResponse
	resp.Location.ID = loc.ID
	resp.Location.Name = loc.Name
	resp.Alerts.Last24h = last24h
	resp.Alerts.LastWeek = int64(len(weekAlerts))
	resp.Alerts.ByType = stats.CountByKey(weekAlerts, func(a models.Alert) string { return a.Type })
	resp.SafetyLevel = stats.SafetyLevel(int(last24h))

	payload, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode stats"})
		return
	}
	h.cache.SetSafetyStats(ctx, locationID, payload)
	c.Data(http.StatusOK, "application/json", payload)
}
