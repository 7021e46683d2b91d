package repository

import (
	"spotline/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *models.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var c models.Comment
	if err := r.db.Preload("User").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByLocation(locationID uint, limit, offset int) ([]models.Comment, error) {
	var list []models.Comment
	err := r.db.Preload("User").
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) CountByLocation(locationID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Comment{}).Where("location_id = ?", locationID).Count(&n).Error
	return n, err
}

func (r *CommentRepository) ListByUser(userID uint, limit int) ([]models.Comment, error) {
	var list []models.Comment
	err := r.db.Preload("Location").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
