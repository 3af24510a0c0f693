package repository

import (
	"learnplay_backend/internal/model"

	"gorm.io/gorm"
)

type PracticeRepository struct {
	DB *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) *PracticeRepository {
	return &PracticeRepository{DB: db}
}

func (r *PracticeRepository) CreateSession(session *model.PracticeSession) error {
	return r.DB.Create(session).Error
}

func (r *PracticeRepository) FindSession(id uint) (*model.PracticeSession, error) {
	var session model.PracticeSession
	err := r.DB.First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PracticeRepository) UpdateSession(tx *gorm.DB, session *model.PracticeSession) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Save(session).Error
}

func (r *PracticeRepository) SaveAttempt(tx *gorm.DB, attempt *model.PracticeAttempt) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(attempt).Error
}

func (r *PracticeRepository) AttemptsBySession(sessionID uint) ([]model.PracticeAttempt, error) {
	var attempts []model.PracticeAttempt
	err := r.DB.Where("session_id = ?", sessionID).Order("id").Find(&attempts).Error
	return attempts, err
}

// RecentSessions 返回用户最近完成的会话
func (r *PracticeRepository) RecentSessions(userID uint, limit int) ([]model.PracticeSession, error) {
	var sessions []model.PracticeSession
	err := r.DB.Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
