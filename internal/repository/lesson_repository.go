package repository

import (
	"errors"

	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) List(subject string) ([]model.Lesson, error) {
	var lessons []model.Lesson
	query := r.DB.Where("published = ?", true)
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	err := query.Order("subject, sort_order").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) IsCompleted(userID, lessonID uint) (bool, error) {
	var completion model.LessonCompletion
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&completion).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *LessonRepository) SaveCompletion(tx *gorm.DB, completion *model.LessonCompletion) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(completion).Error
}

func (r *LessonRepository) CompletedLessonIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("user_id = ?", userID).
		Pluck("lesson_id", &ids).Error
	return ids, err
}
