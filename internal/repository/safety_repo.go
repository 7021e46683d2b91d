package repository

import (
	"spotline/internal/models"

	"gorm.io/gorm"
)

type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

func (r *BlockRepository) Create(b *models.Block) error {
	return r.db.Create(b).Error
}

func (r *BlockRepository) Delete(blockerID, blockedID uint) (bool, error) {
	res := r.db.
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	return res.RowsAffected > 0, res.Error
}

func (r *BlockRepository) IsBlocked(blockerID, blockedID uint) (bool, error) {
	var n int64
	err := r.db.Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&n).Error
	return n > 0, err
}

// IsBlockedEither reports whether either user has blocked the other.
// Messaging is refused in both directions.
func (r *BlockRepository) IsBlockedEither(a, b uint) (bool, error) {
	var n int64
	err := r.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&n).Error
	return n > 0, err
}

func (r *BlockRepository) List(blockerID uint) ([]models.Block, error) {
	var list []models.Block
	err := r.db.Preload("Blocked").
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) ListPending(limit int) ([]models.Report, error) {
	var list []models.Report
	err := r.db.Where("status = ?", "PENDING").Limit(limit).Find(&list).Error
	return list, err
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	return r.db.Create(log).Error
}
