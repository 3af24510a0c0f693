package controller

import (
	"learnplay_backend/internal/service"
	"learnplay_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// List godoc
// @Summary 用户徽章
// @Tags 徽章
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/badges [get]
func (c *BadgeController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.BadgeService.UserBadges(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// Leaderboard godoc
// @Summary 经验排行榜
// @Description 全站经验前 20 名，附当前用户名次
// @Tags 徽章
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/badges/leaderboard [get]
func (c *BadgeController) Leaderboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.BadgeService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	rank, err := c.BadgeService.Rank(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"entries": entries,
		"myRank":  rank,
	})
}
