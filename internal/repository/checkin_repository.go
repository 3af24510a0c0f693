package repository

import (
	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type CheckinRepository struct {
	DB *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

func (r *CheckinRepository) Create(tx *gorm.DB, checkin *model.Checkin) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(checkin).Error
}

// GetCheckinCountByUser 获取用户的总签到次数
func (r *CheckinRepository) GetCheckinCountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Checkin{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
