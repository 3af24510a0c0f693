package service

import (
	"errors"
	"time"

	"learnplay_backend/internal/model"
	"learnplay_backend/internal/progression"
	"learnplay_backend/internal/repository"
	"learnplay_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	Gamification *GamificationService
}

func NewQuizService(quizRepo *repository.QuizRepository, gamification *GamificationService) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		Gamification: gamification,
	}
}

// QuizSubmission 一次测验的提交结果
type QuizSubmission struct {
	Score    int                        `json:"score"`
	Total    int                        `json:"total"`
	Perfect  bool                       `json:"perfect"`
	EarnedXP int                        `json:"earnedXP"`
	LevelUps []progression.LevelUpEvent `json:"levelUps,omitempty"`
}

// QuizView 测验加上当前用户的完成标记与历史得分
type QuizView struct {
	model.Quiz
	Completed bool `json:"Completed"`
	Score     int  `json:"Score"`
	Total     int  `json:"Total"`
}

func (s *QuizService) List(subject string, userID uint) ([]QuizView, error) {
	quizzes, err := s.QuizRepo.List(subject)
	if err != nil {
		return nil, err
	}

	results := map[uint]model.QuizResult{}
	if userID > 0 {
		rows, err := s.QuizRepo.ResultsByUser(userID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			results[r.QuizID] = r
		}
	}

	views := make([]QuizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		view := QuizView{Quiz: quiz}
		if r, ok := results[quiz.ID]; ok {
			view.Completed = true
			view.Score = r.Score
			view.Total = r.Total
		}
		views = append(views, view)
	}
	return views, nil
}

// Get 返回测验及题目，题目不带答案字段的隐藏由控制器层处理
func (s *QuizService) Get(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

// Submit 判分并发奖。answers 为题目 ID 到所选选项下标的映射。
// 每个测验每个用户只计一次；满分在固定奖励外单独追加一笔奖励。
func (s *QuizService) Submit(userID, quizID uint, answers map[uint]int) (*QuizSubmission, error) {
	quiz, err := s.Get(quizID)
	if err != nil {
		return nil, err
	}

	existing, err := s.QuizRepo.FindResult(userID, quizID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrQuizAlreadySubmitted
	}

	score := 0
	total := len(quiz.Questions)
	for _, q := range quiz.Questions {
		if choice, ok := answers[q.ID]; ok && choice == q.Answer {
			score++
		}
	}

	points, perfect := progression.QuizPoints(score, total)

	submission := &QuizSubmission{Score: score, Total: total, Perfect: perfect}
	err = s.Gamification.DB.Transaction(func(tx *gorm.DB) error {
		award, err := s.Gamification.award(tx, userID, points, "Quiz completed: "+quiz.Title, "quiz")
		if err != nil {
			return err
		}
		earned := award.Earned
		if award.LevelUp != nil {
			submission.LevelUps = append(submission.LevelUps, *award.LevelUp)
		}

		if perfect {
			bonus, err := s.Gamification.award(tx, userID, progression.PerfectQuizBonus, "Perfect Score Bonus!", "quiz")
			if err != nil {
				return err
			}
			earned += bonus.Earned
			if bonus.LevelUp != nil {
				submission.LevelUps = append(submission.LevelUps, *bonus.LevelUp)
			}
		}
		submission.EarnedXP = earned

		now := time.Now()
		result := &model.QuizResult{
			UserID:      userID,
			QuizID:      quizID,
			Score:       score,
			Total:       total,
			Answers:     answers,
			EarnedXP:    earned,
			Completed:   true,
			CompletedAt: now,
		}
		return s.QuizRepo.SaveResult(tx, result)
	})
	// 唯一索引 (user_id, quiz_id) 兜底并发重复提交：
	// 第二个事务在插入时撞键，整个事务连同发奖一起回滚
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, util.ErrQuizAlreadySubmitted
	}
	if err != nil {
		return nil, err
	}
	return submission, nil
}
