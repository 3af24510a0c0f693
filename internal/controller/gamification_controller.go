package controller

import (
	"errors"
	"time"

	"learnplay_backend/internal/progression"
	"learnplay_backend/internal/service"
	"learnplay_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// Profile godoc
// @Summary 账本概览
// @Description 返回经验、积分、等级、升级阈值和连续签到天数
// @Tags 游戏化
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/gamification/profile [get]
func (c *GamificationController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.GamificationService.Profile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// CheckIn godoc
// @Summary 每日签到
// @Description 推进连续签到天数并发放封顶奖励，同一天重复签到幂等
// @Tags 游戏化
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response "连续天数、奖励和可能的升级事件"
// @Router /api/gamification/checkin [post]
func (c *GamificationController) CheckIn(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.GamificationService.CheckIn(claims.UserID, time.Now())
	if err != nil {
		if errors.Is(err, progression.ErrInvalidDate) {
			util.BadRequest(ctx, "签到日期不合法")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// History godoc
// @Summary 积分流水
// @Description 分页返回用户的积分变动记录
// @Tags 游戏化
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数" default(20)
// @Success 200 {object} util.Response
// @Router /api/gamification/history [get]
func (c *GamificationController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	events, total, err := c.GamificationService.PointsHistory(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	rows := make([]gin.H, 0, len(events))
	for _, e := range events {
		rows = append(rows, gin.H{
			"id":        e.ID,
			"amount":    e.Amount,
			"reason":    e.Reason,
			"leveledUp": e.LeveledUp(),
			"createdAt": e.CreatedAt,
		})
	}
	util.Success(ctx, util.PageResponse{
		List:  rows,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
