package repository

import (
	"time"

	"spotline/internal/models"
	"spotline/pkg/stats"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(loc *models.Location) error {
	return r.db.Create(loc).Error
}

func (r *LocationRepository) GetByID(id uint) (*models.Location, error) {
	var loc models.Location
	if err := r.db.First(&loc, id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// ListAll returns every location. Candidate sets are small enough for
// per-request scans; proximity filtering happens in memory afterwards.
func (r *LocationRepository) ListAll() ([]models.Location, error) {
	var list []models.Location
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *LocationRepository) Update(loc *models.Location) error {
	return r.db.Save(loc).Error
}

// ActiveCheckInCounts returns active-user counts per location for check-ins
// newer than cutoff, keyed by location ID.
func (r *LocationRepository) ActiveCheckInCounts(cutoff time.Time) (map[uint]int64, error) {
	var rows []struct {
		LocationID uint
		N          int64
	}
	err := r.db.Model(&models.CheckIn{}).
		Select("location_id, COUNT(*) AS n").
		Where("active = ? AND created_at >= ?", true, cutoff).
		Group("location_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.LocationID] = row.N
	}
	return counts, nil
}

// Rate folds one rating into the location's accumulator. The row is locked
// for the duration of the transaction so concurrent submissions serialize
// and no update is lost.
func (r *LocationRepository) Rate(id uint, value int) (*models.Location, error) {
	var loc models.Location
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&loc, id).Error; err != nil {
			return err
		}
		next, err := stats.ApplyRating(loc.RatingState(), value)
		if err != nil {
			return err
		}
		loc.Rating = next.Mean
		loc.TotalRatings = next.Total
		return tx.Model(&loc).Updates(map[string]interface{}{
			"rating":        next.Mean,
			"total_ratings": next.Total,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
