package controller

import (
	"errors"

	"learnplay_backend/internal/adaptive"
	"learnplay_backend/internal/service"
	"learnplay_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// StartSessionRequest 开始练习请求
type StartSessionRequest struct {
	Subject string `json:"subject"`
}

// Start godoc
// @Summary 开始练习会话
// @Description 以用户当前的难度层级开启一次自适应练习
// @Tags 练习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StartSessionRequest true "学科"
// @Success 201 {object} util.Response{data=model.PracticeSession}
// @Router /api/practice/sessions [post]
func (c *PracticeController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.PracticeService.StartSession(claims.UserID, req.Subject)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// SubmitAttemptRequest 会话内一次作答
type SubmitAttemptRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	BasePoints int    `json:"basePoints" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
	Skipped    bool   `json:"skipped"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// SubmitAttempt godoc
// @Summary 提交作答
// @Description 评分一道题并返回滚动统计、连对数和调整后的难度层级
// @Tags 练习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话 ID"
// @Param   body body SubmitAttemptRequest true "作答数据"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "作答数据不合法"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "会话已结束"
// @Router /api/practice/sessions/{id}/attempts [post]
func (c *PracticeController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt := adaptive.Attempt{
		QuestionID: req.QuestionID,
		BasePoints: req.BasePoints,
		IsCorrect:  req.IsCorrect,
		Skipped:    req.Skipped,
		ElapsedMs:  req.ElapsedMs,
	}

	result, err := c.PracticeService.SubmitAttempt(claims.UserID, util.MustParseUint(ctx.Param("id")), attempt)
	if err != nil {
		switch {
		case errors.Is(err, adaptive.ErrInvalidAttempt):
			util.BadRequest(ctx, "作答数据不合法")
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionCompleted):
			util.Error(ctx, 409, "会话已结束")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Get godoc
// @Summary 练习会话详情
// @Description 返回会话及全部作答记录，已结束的会话可用于复盘
// @Tags 练习
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/practice/sessions/{id} [get]
func (c *PracticeController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.PracticeService.GetSession(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// Finish godoc
// @Summary 结束练习会话
// @Description 结束会话并把累计得分一次性计入账本
// @Tags 练习
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "会话已结束"
// @Router /api/practice/sessions/{id}/finish [post]
func (c *PracticeController) Finish(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.PracticeService.FinishSession(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionCompleted):
			util.Error(ctx, 409, "会话已结束")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, summary)
}

// Recent godoc
// @Summary 最近练习记录
// @Tags 练习
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/practice/sessions [get]
func (c *PracticeController) Recent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := 10
	if l := ctx.Query("limit"); l != "" {
		limit = int(util.MustParseUint(l))
	}

	sessions, err := c.PracticeService.RecentSessions(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}
