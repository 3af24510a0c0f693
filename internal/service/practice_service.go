package service

import (
	"errors"
	"time"

	"learnplay_backend/internal/adaptive"
	"learnplay_backend/internal/model"
	"learnplay_backend/internal/progression"
	"learnplay_backend/internal/repository"
	"learnplay_backend/internal/util"

	"gorm.io/gorm"
)

// PracticeService 驱动自适应练习：逐题评分、滚动统计、
// 依据正确率和连对数调整用户的难度层级。
type PracticeService struct {
	PracticeRepo *repository.PracticeRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
}

func NewPracticeService(
	practiceRepo *repository.PracticeRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
) *PracticeService {
	return &PracticeService{
		PracticeRepo: practiceRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
	}
}

// AttemptResult 一次作答的反馈
type AttemptResult struct {
	EarnedPoints int                       `json:"earnedPoints"`
	Rating       adaptive.Rating           `json:"rating"`
	Stats        adaptive.SessionStats     `json:"stats"`
	Accuracy     float64                   `json:"accuracy"`
	Consecutive  int                       `json:"consecutiveCorrect"`
	Level        adaptive.ProficiencyLevel `json:"level"`
	LevelChanged bool                      `json:"levelChanged"`
}

// SessionSummary 会话结束时的汇总
type SessionSummary struct {
	Session  *model.PracticeSession    `json:"session"`
	Accuracy float64                   `json:"accuracy"`
	EarnedXP int                       `json:"earnedXP"`
	LevelUp  *progression.LevelUpEvent `json:"levelUp,omitempty"`
}

func (s *PracticeService) StartSession(userID uint, subject string) (*model.PracticeSession, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	level := user.ProficiencyLevel
	if !level.Valid() {
		level = adaptive.LevelBasic
	}

	session := &model.PracticeSession{
		PublicID:   model.GenerateUUID(),
		UserID:     userID,
		Subject:    subject,
		StartLevel: level,
		EndLevel:   level,
	}
	if err := s.PracticeRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *PracticeService) findOwnedSession(userID, sessionID uint) (*model.PracticeSession, error) {
	session, err := s.PracticeRepo.FindSession(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrSessionNotFound
	}
	if session.Completed() {
		return nil, util.ErrSessionCompleted
	}
	return session, nil
}

// SubmitAttempt 评一道题：更新滚动统计与连对计数，
// 正确率和连对数跨过阈值时立刻调整难度层级并写回用户档案。
func (s *PracticeService) SubmitAttempt(userID, sessionID uint, attempt adaptive.Attempt) (*AttemptResult, error) {
	session, err := s.findOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := adaptive.ScoreAttempt(attempt)
	if err != nil {
		return nil, err
	}

	stats := adaptive.Accumulate(session.Stats(), attempt, result)
	if attempt.Answered() {
		session.ConsecutiveCorrect++
	} else {
		session.ConsecutiveCorrect = 0
	}

	session.TotalQuestions = stats.TotalQuestions
	session.CorrectAnswers = stats.CorrectAnswers
	session.TotalPoints = stats.TotalPoints
	session.AverageTimeMs = stats.AverageTimeMs

	oldLevel := session.EndLevel
	newLevel := adaptive.NextLevel(oldLevel, stats.Accuracy(), session.ConsecutiveCorrect)
	session.EndLevel = newLevel

	err = s.Gamification.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.PracticeRepo.UpdateSession(tx, session); err != nil {
			return err
		}

		record := &model.PracticeAttempt{
			SessionID:    sessionID,
			UserID:       userID,
			QuestionID:   attempt.QuestionID,
			BasePoints:   attempt.BasePoints,
			Correct:      attempt.IsCorrect,
			Skipped:      attempt.Skipped,
			ElapsedMs:    attempt.ElapsedMs,
			EarnedPoints: result.EarnedPoints,
			Rating:       string(result.Rating),
		}
		if err := s.PracticeRepo.SaveAttempt(tx, record); err != nil {
			return err
		}

		// 层级写回和作答记录同一个事务，避免只落了一半
		if newLevel != oldLevel {
			return s.UserRepo.UpdateProficiency(tx, userID, string(newLevel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AttemptResult{
		EarnedPoints: result.EarnedPoints,
		Rating:       result.Rating,
		Stats:        stats,
		Accuracy:     stats.Accuracy(),
		Consecutive:  session.ConsecutiveCorrect,
		Level:        newLevel,
		LevelChanged: newLevel != oldLevel,
	}, nil
}

// FinishSession 结束会话并把会话累计得分一次性计入账本
func (s *PracticeService) FinishSession(userID, sessionID uint) (*SessionSummary, error) {
	session, err := s.findOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.CompletedAt = &now

	summary := &SessionSummary{Session: session, Accuracy: session.Stats().Accuracy()}
	err = s.Gamification.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.PracticeRepo.UpdateSession(tx, session); err != nil {
			return err
		}
		if session.TotalPoints > 0 {
			award, err := s.Gamification.award(tx, userID, session.TotalPoints, "Practice session completed", "practice")
			if err != nil {
				return err
			}
			summary.EarnedXP = award.Earned
			summary.LevelUp = award.LevelUp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// SessionDetail 会话及其全部作答记录，结束后的复盘也走这里
type SessionDetail struct {
	Session  *model.PracticeSession  `json:"session"`
	Attempts []model.PracticeAttempt `json:"attempts"`
	Accuracy float64                 `json:"accuracy"`
}

func (s *PracticeService) GetSession(userID, sessionID uint) (*SessionDetail, error) {
	session, err := s.PracticeRepo.FindSession(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrSessionNotFound
	}

	attempts, err := s.PracticeRepo.AttemptsBySession(sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionDetail{
		Session:  session,
		Attempts: attempts,
		Accuracy: session.Stats().Accuracy(),
	}, nil
}

// RecentSessions 用户最近完成的练习会话
func (s *PracticeService) RecentSessions(userID uint, limit int) ([]model.PracticeSession, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.PracticeRepo.RecentSessions(userID, limit)
}
