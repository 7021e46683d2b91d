package repository

import (
	"spotline/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(f *models.Favorite) error {
	return r.db.Create(f).Error
}

func (r *FavoriteRepository) Remove(userID, locationID uint) (bool, error) {
	res := r.db.
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Delete(&models.Favorite{})
	return res.RowsAffected > 0, res.Error
}

func (r *FavoriteRepository) List(userID uint, limit, offset int) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Preload("Location").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

func (r *FavoriteRepository) Count(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *FavoriteRepository) Exists(userID, locationID uint) (bool, error) {
	var n int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Count(&n).Error
	return n > 0, err
}
