package controller

import (
	"errors"

	"learnplay_backend/internal/service"
	"learnplay_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// List godoc
// @Summary 测验列表
// @Description 按学科返回已发布的测验，带当前用户的完成标记与历史得分
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   subject query string false "学科过滤"
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	quizzes, err := c.QuizService.List(ctx.Query("subject"), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Get godoc
// @Summary 测验详情
// @Description 返回测验及题目，不包含正确答案
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "测验 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 答案不下发给前端
	questions := make([]gin.H, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, gin.H{
			"id":      q.ID,
			"text":    q.Text,
			"options": q.Options,
			"points":  q.Points,
		})
	}

	util.Success(ctx, gin.H{
		"id":        quiz.ID,
		"subject":   quiz.Subject,
		"title":     quiz.Title,
		"questions": questions,
	})
}

// SubmitQuizRequest 提交测验请求，answers 为题目 ID 到选项下标的映射
type SubmitQuizRequest struct {
	Answers map[uint]int `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary 提交测验
// @Description 判分并发放积分，满分额外发放奖励；每个测验只计一次
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "测验 ID"
// @Param   body body SubmitQuizRequest true "作答"
// @Success 200 {object} util.Response "得分、获得积分和可能的升级事件"
// @Failure 404 {object} util.Response "测验不存在"
// @Failure 409 {object} util.Response "测验已提交过"
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.QuizService.Submit(claims.UserID, util.MustParseUint(ctx.Param("id")), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuizAlreadySubmitted):
			util.Error(ctx, 409, "测验已提交过，不能重复得分")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, submission)
}
