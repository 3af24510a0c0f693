package repository

import (
	"errors"

	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) List(subject string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	query := r.DB.Where("published = ?", true)
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	err := query.Order("id").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindResult(userID, quizID uint) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *QuizRepository) SaveResult(tx *gorm.DB, result *model.QuizResult) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(result).Error
}

func (r *QuizRepository) ResultsByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	return results, err
}
