package model

import (
	"time"

	"learnplay_backend/internal/adaptive"
)

// PracticeSession 一次自适应练习会话，逐题滚动统计，结束后只保留汇总
type PracticeSession struct {
	BaseModel
	PublicID string `gorm:"size:36;uniqueIndex"` // 对外引用的会话标识
	UserID   uint   `gorm:"index;type:bigint unsigned;not null"`
	Subject  string `gorm:"size:50;index"`

	TotalQuestions int     `gorm:"default:0"`
	CorrectAnswers int     `gorm:"default:0"`
	TotalPoints    int     `gorm:"default:0"`
	AverageTimeMs  float64 `gorm:"default:0"`

	// 连对计数：答对 +1，答错或跳过清零
	ConsecutiveCorrect int `gorm:"default:0"`

	StartLevel  adaptive.ProficiencyLevel `gorm:"size:20"`
	EndLevel    adaptive.ProficiencyLevel `gorm:"size:20"`
	CompletedAt *time.Time
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// Completed 会话是否已结束
func (s PracticeSession) Completed() bool {
	return s.CompletedAt != nil
}

// Stats 从会话行还原滚动统计
func (s PracticeSession) Stats() adaptive.SessionStats {
	return adaptive.SessionStats{
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		TotalPoints:    s.TotalPoints,
		AverageTimeMs:  s.AverageTimeMs,
	}
}

// PracticeAttempt 会话内一次作答的留痕
type PracticeAttempt struct {
	BaseModel
	SessionID  uint   `gorm:"index;not null"`
	UserID     uint   `gorm:"index;type:bigint unsigned;not null"`
	QuestionID string `gorm:"size:64"`
	BasePoints int    `gorm:"not null"`
	Correct    bool   `gorm:"default:false"`
	Skipped    bool   `gorm:"default:false"`
	ElapsedMs  int64  `gorm:"default:0"`

	EarnedPoints int    `gorm:"default:0"`
	Rating       string `gorm:"size:20"`
}

func (PracticeAttempt) TableName() string {
	return "practice_attempts"
}
