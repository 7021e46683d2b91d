package repository

import (
	"time"

	"spotline/internal/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(a *models.Alert) error {
	return r.db.Create(a).Error
}

func (r *AlertRepository) GetByID(id uint) (*models.Alert, error) {
	var a models.Alert
	err := r.db.Preload("User").Preload("Location").First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListActiveSince returns active alerts created after cutoff, newest first.
// Proximity filtering happens in memory on top of this candidate set.
func (r *AlertRepository) ListActiveSince(cutoff time.Time) ([]models.Alert, error) {
	var list []models.Alert
	err := r.db.Preload("User").Preload("Location").
		Where("active = ? AND created_at >= ?", true, cutoff).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *AlertRepository) ListActiveByLocationSince(locationID uint, cutoff time.Time) ([]models.Alert, error) {
	var list []models.Alert
	err := r.db.Preload("User").
		Where("location_id = ? AND active = ? AND created_at >= ?", locationID, true, cutoff).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *AlertRepository) CountActiveByLocationSince(locationID uint, cutoff time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.Alert{}).
		Where("location_id = ? AND active = ? AND created_at >= ?", locationID, true, cutoff).
		Count(&n).Error
	return n, err
}

// Dismiss flips an alert inactive. Author-only enforcement lives in the handler.
func (r *AlertRepository) Dismiss(id uint) error {
	return r.db.Model(&models.Alert{}).Where("id = ?", id).Update("active", false).Error
}

// SweepExpired deactivates alerts older than cutoff and returns how many
// rows were flipped.
func (r *AlertRepository) SweepExpired(cutoff time.Time) (int64, error) {
	res := r.db.Model(&models.Alert{}).
		Where("active = ? AND created_at < ?", true, cutoff).
		Update("active", false)
	return res.RowsAffected, res.Error
}
