package repository

import (
	"errors"

	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.SubjectProgress, error) {
	var progress []model.SubjectProgress
	err := r.DB.Where("user_id = ?", userID).Order("subject").Find(&progress).Error
	return progress, err
}

// Increment 学科进度加 amount，封顶 100；没有记录时先创建
func (r *ProgressRepository) Increment(tx *gorm.DB, userID uint, subject string, amount int) (*model.SubjectProgress, error) {
	if tx == nil {
		tx = r.DB
	}

	var progress model.SubjectProgress
	err := tx.Where("user_id = ? AND subject = ?", userID, subject).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.SubjectProgress{UserID: userID, Subject: subject}
	} else if err != nil {
		return nil, err
	}

	progress.Percent += amount
	if progress.Percent > 100 {
		progress.Percent = 100
	}

	if err := tx.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
