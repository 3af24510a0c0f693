package repository

import (
	"errors"

	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindByUser(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&badges).Error
	return badges, err
}

// Grant 授予徽章，同一用户同一徽章只授予一次，返回是否新授予
func (r *BadgeRepository) Grant(tx *gorm.DB, userID uint, code, name, description string) (bool, error) {
	if tx == nil {
		tx = r.DB
	}

	var existing model.Badge
	err := tx.Where("user_id = ? AND code = ?", userID, code).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	badge := model.Badge{
		UserID:      userID,
		Code:        code,
		Name:        name,
		Description: description,
	}
	if err := tx.Create(&badge).Error; err != nil {
		return false, err
	}
	return true, nil
}
