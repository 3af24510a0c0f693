package service

import (
	"fmt"
	"time"

	"learnplay_backend/internal/model"
	"learnplay_backend/internal/progression"
	"learnplay_backend/internal/repository"
	"learnplay_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GamificationService 是账本的唯一写入方。
// 所有加分路径都走 award：行锁读取用户、推进账本、落流水、
// 发徽章，全部在同一个事务内完成。
type GamificationService struct {
	DB             *gorm.DB
	UserRepo       *repository.UserRepository
	PointEventRepo *repository.PointEventRepository
	CheckinRepo    *repository.CheckinRepository
	BadgeRepo      *repository.BadgeRepository
	Logger         *zap.Logger
}

func NewGamificationService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	pointEventRepo *repository.PointEventRepository,
	checkinRepo *repository.CheckinRepository,
	badgeRepo *repository.BadgeRepository,
	logger *zap.Logger,
) *GamificationService {
	return &GamificationService{
		DB:             db,
		UserRepo:       userRepo,
		PointEventRepo: pointEventRepo,
		CheckinRepo:    checkinRepo,
		BadgeRepo:      badgeRepo,
		Logger:         logger,
	}
}

// AwardResult 一次加分的结果，LevelUp 为 nil 表示没有跨级
type AwardResult struct {
	User    *model.User               `json:"user"`
	Earned  int                       `json:"earned"`
	LevelUp *progression.LevelUpEvent `json:"levelUp,omitempty"`
}

// CheckinResult 一次签到的结果
type CheckinResult struct {
	Streak           int                       `json:"streak"`
	BonusXP          int                       `json:"bonusXP"`
	AlreadyCheckedIn bool                      `json:"alreadyCheckedIn"`
	LevelUp          *progression.LevelUpEvent `json:"levelUp,omitempty"`
}

func ledgerState(user *model.User) progression.State {
	return progression.State{
		Experience:     user.XP,
		TotalPoints:    user.Points,
		Level:          user.Level,
		CurrentStreak:  user.CurrentStreak,
		LastActiveDate: user.LastActiveDate,
	}
}

func applyLedgerState(user *model.User, state progression.State) {
	user.XP = state.Experience
	user.Points = state.TotalPoints
	user.Level = state.Level
	user.CurrentStreak = state.CurrentStreak
	user.LastActiveDate = state.LastActiveDate
}

// AddPoints 在独立事务中给用户加分，source 用于指标打点
func (s *GamificationService) AddPoints(userID uint, amount int, reason, source string) (*AwardResult, error) {
	var result *AwardResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = s.award(tx, userID, amount, reason, source)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// award 在调用方的事务内执行一次加分
func (s *GamificationService) award(tx *gorm.DB, userID uint, amount int, reason, source string) (*AwardResult, error) {
	user, err := s.UserRepo.FindByIDForUpdate(tx, userID)
	if err != nil {
		return nil, err
	}

	state, event, err := progression.AddPoints(ledgerState(user), amount, reason)
	if err != nil {
		return nil, err
	}

	levelBefore := user.Level
	applyLedgerState(user, state)

	if err := tx.Save(user).Error; err != nil {
		return nil, err
	}

	pe := &model.PointEvent{
		UserID:      userID,
		Amount:      amount,
		Reason:      reason,
		LevelBefore: levelBefore,
		LevelAfter:  user.Level,
	}
	if err := s.PointEventRepo.Create(tx, pe); err != nil {
		return nil, err
	}

	monitoring.PointsAwarded.WithLabelValues(source).Add(float64(amount))
	if event != nil {
		monitoring.LevelUps.Inc()
		if err := s.grantLevelBadges(tx, user); err != nil {
			return nil, err
		}
		s.Logger.Info("用户升级",
			zap.Uint("user_id", userID),
			zap.Int("old_level", event.OldLevel),
			zap.Int("new_level", event.NewLevel),
			zap.String("reason", reason))
	}

	return &AwardResult{User: user, Earned: amount, LevelUp: event}, nil
}

// CheckIn 每日签到：同一天重复签到直接返回当前连续天数，不重复发奖
func (s *GamificationService) CheckIn(userID uint, now time.Time) (*CheckinResult, error) {
	var result *CheckinResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := s.UserRepo.FindByIDForUpdate(tx, userID)
		if err != nil {
			return err
		}

		today := progression.DateOf(now)
		before := ledgerState(user)
		state, streak, event, err := progression.UpdateStreak(before, today)
		if err != nil {
			return err
		}

		// 日期没有推进说明今天已签到
		if !before.LastActiveDate.IsZero() && progression.DateOf(before.LastActiveDate).Equal(today) {
			result = &CheckinResult{Streak: streak, AlreadyCheckedIn: true}
			return nil
		}

		bonus := state.TotalPoints - before.TotalPoints
		levelBefore := user.Level
		applyLedgerState(user, state)

		if err := tx.Save(user).Error; err != nil {
			return err
		}

		checkin := &model.Checkin{
			UserID:     userID,
			CheckinAt:  today.Time(),
			StreakDays: streak,
			BonusXP:    bonus,
		}
		if err := s.CheckinRepo.Create(tx, checkin); err != nil {
			return err
		}

		if bonus > 0 {
			pe := &model.PointEvent{
				UserID:      userID,
				Amount:      bonus,
				Reason:      fmt.Sprintf("%d day streak!", streak),
				LevelBefore: levelBefore,
				LevelAfter:  user.Level,
			}
			if err := s.PointEventRepo.Create(tx, pe); err != nil {
				return err
			}
			monitoring.PointsAwarded.WithLabelValues("streak").Add(float64(bonus))
		}

		if event != nil {
			monitoring.LevelUps.Inc()
			if err := s.grantLevelBadges(tx, user); err != nil {
				return err
			}
		}

		if err := s.grantStreakBadges(tx, userID, streak); err != nil {
			return err
		}

		result = &CheckinResult{Streak: streak, BonusXP: bonus, LevelUp: event}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PointsHistory 分页返回积分流水
func (s *GamificationService) PointsHistory(userID uint, page, limit int) ([]model.PointEvent, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.PointEventRepo.FindByUser(userID, page, limit)
}

// Profile 返回账本视图：经验、等级、升级阈值和连续天数
func (s *GamificationService) Profile(userID uint) (gin.H, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"xp":             user.XP,
		"points":         user.Points,
		"level":          user.Level,
		"nextLevelXP":    progression.ExperienceForNextLevel(user.Level),
		"levelProgress":  user.XP % progression.XPPerLevel / 10,
		"currentStreak":  user.CurrentStreak,
		"lastActiveDate": user.LastActiveDate,
	}, nil
}

var levelBadges = map[int]struct{ code, name, desc string }{
	5:  {"level-5", "Rising Star", "Reached level 5"},
	10: {"level-10", "Scholar", "Reached level 10"},
	25: {"level-25", "Master", "Reached level 25"},
}

func (s *GamificationService) grantLevelBadges(tx *gorm.DB, user *model.User) error {
	for threshold, b := range levelBadges {
		if user.Level >= threshold {
			if _, err := s.BadgeRepo.Grant(tx, user.ID, b.code, b.name, b.desc); err != nil {
				return err
			}
		}
	}
	return nil
}

var streakBadges = map[int]struct{ code, name, desc string }{
	7:  {"streak-7", "One Week Streak", "Checked in 7 days in a row"},
	30: {"streak-30", "One Month Streak", "Checked in 30 days in a row"},
}

func (s *GamificationService) grantStreakBadges(tx *gorm.DB, userID uint, streak int) error {
	for threshold, b := range streakBadges {
		if streak >= threshold {
			if _, err := s.BadgeRepo.Grant(tx, userID, b.code, b.name, b.desc); err != nil {
				return err
			}
		}
	}
	return nil
}
