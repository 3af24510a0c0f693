package service

import (
	"context"
	"encoding/json"
	"time"

	"learnplay_backend/internal/model"
	"learnplay_backend/internal/repository"
	"learnplay_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardCacheKey = "leaderboard:xp"
	leaderboardCacheTTL = 60 * time.Second
	leaderboardSize     = 20
)

type BadgeService struct {
	BadgeRepo *repository.BadgeRepository
	UserRepo  *repository.UserRepository
	Redis     *redis.Client
}

func NewBadgeService(badgeRepo *repository.BadgeRepository, userRepo *repository.UserRepository, rdb *redis.Client) *BadgeService {
	return &BadgeService{
		BadgeRepo: badgeRepo,
		UserRepo:  userRepo,
		Redis:     rdb,
	}
}

func (s *BadgeService) UserBadges(userID uint) ([]model.Badge, error) {
	return s.BadgeRepo.FindByUser(userID)
}

// LeaderboardEntry 排行榜单行
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
}

// Leaderboard 返回经验前 20 名，结果在 Redis 缓存 60 秒
func (s *BadgeService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByXP(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:  i + 1,
			Name:  u.Name,
			XP:    u.XP,
			Level: u.Level,
		})
	}

	if s.Redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("缓存排行榜失败", zap.Error(err))
			}
		}
	}
	return entries, nil
}

// Rank 返回用户在全站的名次（经验更高的人数 + 1）
func (s *BadgeService) Rank(userID uint) (int, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return 0, err
	}
	higher, err := s.UserRepo.CountHigherXP(user.XP)
	if err != nil {
		return 0, err
	}
	return int(higher) + 1, nil
}
