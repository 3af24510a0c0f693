package adaptive

import "errors"

// ErrInvalidAttempt 表示调用方传入的作答数据不合法（basePoints <= 0 或 elapsedMs < 0）
var ErrInvalidAttempt = errors.New("invalid attempt")

// Rating 单题作答的定性评价
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingPoor      Rating = "poor"
)

// Attempt 一次作答事件（答对/答错/跳过）
type Attempt struct {
	QuestionID string `json:"questionId"`
	BasePoints int    `json:"basePoints"` // 题目基础分值，由难度决定
	IsCorrect  bool   `json:"isCorrect"`
	Skipped    bool   `json:"skipped"` // 跳过视为答错
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Answered 返回本次作答是否计为答对，跳过一律计为答错
func (a Attempt) Answered() bool {
	return a.IsCorrect && !a.Skipped
}

// ScoringResult 单题评分结果
type ScoringResult struct {
	EarnedPoints int    `json:"earnedPoints"`
	Rating       Rating `json:"rating"`
}

// SessionStats 一次练习会话的滚动统计
type SessionStats struct {
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalPoints    int     `json:"totalPoints"`
	AverageTimeMs  float64 `json:"averageTimeMs"`
}

// Accuracy 返回百分比正确率，没有作答时为 0
func (s SessionStats) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100
}

// ProficiencyLevel 学习者当前的难度层级
type ProficiencyLevel string

const (
	LevelBasic        ProficiencyLevel = "basic"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelAdvanced     ProficiencyLevel = "advanced"
)

// Valid 校验层级取值
func (l ProficiencyLevel) Valid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
