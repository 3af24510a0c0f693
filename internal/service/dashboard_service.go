package service

import (
	"time"

	"learnplay_backend/internal/progression"
	"learnplay_backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	BadgeRepo    *repository.BadgeRepository
	CheckinRepo  *repository.CheckinRepository
	PracticeRepo *repository.PracticeRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	badgeRepo *repository.BadgeRepository,
	checkinRepo *repository.CheckinRepository,
	practiceRepo *repository.PracticeRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		BadgeRepo:    badgeRepo,
		CheckinRepo:  checkinRepo,
		PracticeRepo: practiceRepo,
	}
}

// 每日学习提示，按年内日序轮播
var dailyTips = []string{
	"Short, regular practice beats long cram sessions.",
	"Review yesterday's mistakes before starting something new.",
	"Answering fast is good, answering right is better.",
	"A streak is easier to keep than to rebuild.",
	"Skipped questions count as wrong, so always take a guess.",
	"Finish one lesson today to keep your subject progress moving.",
	"Perfect quiz scores earn a bonus on top of the usual points.",
}

// Overview 聚合仪表盘数据：账本、学科进度、最近练习和当日提示
func (s *DashboardService) Overview(userID uint) (gin.H, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.BadgeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	checkins, err := s.CheckinRepo.GetCheckinCountByUser(userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.PracticeRepo.RecentSessions(userID, 5)
	if err != nil {
		return nil, err
	}

	// 进度条：当前等级内已走过的百分比
	levelProgress := user.XP % progression.XPPerLevel / 10

	return gin.H{
		"user": gin.H{
			"name":             user.Name,
			"avatar":           user.Avatar,
			"proficiencyLevel": user.ProficiencyLevel,
		},
		"ledger": gin.H{
			"xp":            user.XP,
			"points":        user.Points,
			"level":         user.Level,
			"nextLevelXP":   progression.ExperienceForNextLevel(user.Level),
			"levelProgress": levelProgress,
		},
		"streak": gin.H{
			"current":       user.CurrentStreak,
			"totalCheckins": checkins,
		},
		"subjectProgress": progress,
		"recentSessions":  sessions,
		"badges":          badges,
		"dailyTip":        dailyTips[time.Now().YearDay()%len(dailyTips)],
	}, nil
}
