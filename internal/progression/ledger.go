package progression

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount 表示加分数额为负数
	ErrInvalidAmount = errors.New("invalid point amount")
	// ErrInvalidDate 表示签到日期早于上次活跃日期
	ErrInvalidDate = errors.New("invalid streak date")
)

// XPPerLevel 每 1000 经验升一级
const XPPerLevel = 1000

// State 学习者的累计进度账本，经验与积分只增不减。
// Level 冗余存档（与用户档案的持久化格式保持一致），
// 每次变更都由 AddPoints 依据经验重新推导。
type State struct {
	Experience     int       `json:"experience"`
	TotalPoints    int       `json:"totalPoints"`
	Level          int       `json:"level"`
	CurrentStreak  int       `json:"currentStreak"`
	LastActiveDate time.Time `json:"lastActiveDate"` // 仅日期有意义，零值表示从未活跃
}

// LevelUpEvent 经验跨过 1000 整数边界时发出的升级通知，仅供 UI 展示
type LevelUpEvent struct {
	OldLevel     int    `json:"oldLevel"`
	NewLevel     int    `json:"newLevel"`
	PointsGained int    `json:"pointsGained"`
	Reason       string `json:"reason"`
}

// CalculateLevel 由累计经验推导等级：floor(xp/1000) + 1
func CalculateLevel(experience int) int {
	if experience < 0 {
		return 1
	}
	return experience/XPPerLevel + 1
}

// ExperienceForNextLevel 返回当前等级的经验上限（level * 1000），
// 即升到下一级所需跨过的阈值，不是还差多少经验。
// 进度条展示用 experience % 1000 / 10 另行计算。
func ExperienceForNextLevel(currentLevel int) int {
	return currentLevel * XPPerLevel
}

// AddPoints 向账本加分并重新推导等级，跨级时返回升级事件。
// amount 为负返回 ErrInvalidAmount，状态保持不变。
func AddPoints(state State, amount int, reason string) (State, *LevelUpEvent, error) {
	if amount < 0 {
		return state, nil, ErrInvalidAmount
	}

	oldLevel := CalculateLevel(state.Experience)

	next := state
	next.Experience = state.Experience + amount
	next.TotalPoints = state.TotalPoints + amount
	next.Level = CalculateLevel(next.Experience)

	if next.Level > oldLevel {
		return next, &LevelUpEvent{
			OldLevel:     oldLevel,
			NewLevel:     next.Level,
			PointsGained: amount,
			Reason:       reason,
		}, nil
	}
	return next, nil, nil
}

// LessonPoints 课程完成奖励表，未识别的难度按 medium 处理
func LessonPoints(difficulty string) int {
	switch difficulty {
	case "easy":
		return 25
	case "hard":
		return 100
	default:
		return 50
	}
}

const (
	quizBasePoints   = 30
	quizBonusCeiling = 50
	// PerfectQuizBonus 满分测验的额外奖励分
	PerfectQuizBonus = 50
)

// QuizPoints 测验完成的奖励：30 基础分加按正确率折算的奖励分
// （floor(score/total*50)），score == total 时 perfect 为 true。
// total 非正时返回 0 分。
func QuizPoints(score, total int) (points int, perfect bool) {
	if total <= 0 || score < 0 {
		return 0, false
	}
	return quizBasePoints + score*quizBonusCeiling/total, score == total
}

// CompleteLesson 课程完成记账：按难度查表后委托 AddPoints
func CompleteLesson(state State, lessonTitle, difficulty string) (State, *LevelUpEvent, error) {
	return AddPoints(state, LessonPoints(difficulty), "Completed lesson: "+lessonTitle)
}

// CompleteQuiz 测验完成记账。满分时追加一笔独立的奖励加分，
// 两笔各自做升级判定，可能返回两个升级事件。
func CompleteQuiz(state State, score, total int) (State, []LevelUpEvent, int, error) {
	points, perfect := QuizPoints(score, total)

	state, event, err := AddPoints(state, points, "Quiz completed")
	if err != nil {
		return state, nil, 0, err
	}

	var events []LevelUpEvent
	if event != nil {
		events = append(events, *event)
	}
	earned := points

	if perfect {
		state, event, err = AddPoints(state, PerfectQuizBonus, "Perfect Score Bonus!")
		if err != nil {
			return state, events, earned, err
		}
		if event != nil {
			events = append(events, *event)
		}
		earned += PerfectQuizBonus
	}

	return state, events, earned, nil
}
