package repository

import (
	"time"

	"spotline/internal/models"

	"gorm.io/gorm"
)

type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) Create(c *models.CheckIn) error {
	return r.db.Create(c).Error
}

// DeactivateForUser clears any active check-ins before a new one is created;
// a user is present at one location at a time.
func (r *CheckInRepository) DeactivateForUser(userID uint) error {
	return r.db.Model(&models.CheckIn{}).
		Where("user_id = ? AND active = ?", userID, true).
		Update("active", false).Error
}

func (r *CheckInRepository) GetActiveByUser(userID uint) (*models.CheckIn, error) {
	var c models.CheckIn
	err := r.db.Preload("Location").
		Where("user_id = ? AND active = ?", userID, true).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ActiveAtLocation lists active check-ins at a location newer than cutoff,
// with users preloaded for the presence listing.
func (r *CheckInRepository) ActiveAtLocation(locationID uint, cutoff time.Time) ([]models.CheckIn, error) {
	var list []models.CheckIn
	err := r.db.Preload("User").
		Where("location_id = ? AND active = ? AND created_at >= ?", locationID, true, cutoff).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// SweepExpired deactivates check-ins older than cutoff and returns how many
// rows were flipped.
func (r *CheckInRepository) SweepExpired(cutoff time.Time) (int64, error) {
	res := r.db.Model(&models.CheckIn{}).
		Where("active = ? AND created_at < ?", true, cutoff).
		Update("active", false)
	return res.RowsAffected, res.Error
}
