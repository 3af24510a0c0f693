package model

import (
	"time"
)

// Quiz 诊断/巩固测验
type Quiz struct {
	BaseModel
	Subject   string         `gorm:"size:50;index;not null"`
	Title     string         `gorm:"size:200;not null"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID"`
	Published bool           `gorm:"default:true"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion 单选题，Answer 为正确选项下标
type QuizQuestion struct {
	BaseModel
	QuizID   uint     `gorm:"index;not null"`
	Text     string   `gorm:"type:text;not null"`
	Options  []string `gorm:"type:json;serializer:json"`
	Answer   int      `gorm:"not null"`
	Points   int      `gorm:"default:10"` // 练习模式下的基础分值
	Position int      `gorm:"default:0"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizResult 存储用户的测验结果，同一测验同一用户只允许一条
type QuizResult struct {
	BaseModel
	UserID      uint         `gorm:"index:idx_user_quiz,unique;type:bigint unsigned;not null"`
	QuizID      uint         `gorm:"index:idx_user_quiz,unique;not null"`
	Score       int          `gorm:"not null"`
	Total       int          `gorm:"not null"`
	Answers     map[uint]int `gorm:"type:json;serializer:json"`
	EarnedXP    int          `gorm:"default:0"` // 本次测验发放的经验（含满分奖励）
	Completed   bool         `gorm:"default:false"`
	CompletedAt time.Time
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
