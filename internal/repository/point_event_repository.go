package repository

import (
	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type PointEventRepository struct {
	DB *gorm.DB
}

func NewPointEventRepository(db *gorm.DB) *PointEventRepository {
	return &PointEventRepository{DB: db}
}

func (r *PointEventRepository) Create(tx *gorm.DB, event *model.PointEvent) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(event).Error
}

// FindByUser 分页查询用户的积分流水，最新的在前
func (r *PointEventRepository) FindByUser(userID uint, page, limit int) ([]model.PointEvent, int64, error) {
	var events []model.PointEvent
	var total int64

	query := r.DB.Model(&model.PointEvent{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}
