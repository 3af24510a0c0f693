package controller

import (
	"errors"

	"learnplay_backend/internal/model"
	"learnplay_backend/internal/service"
	"learnplay_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// List godoc
// @Summary 课程列表
// @Description 按学科返回已发布的课程，带当前用户的完成标记
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   subject query string false "学科过滤"
// @Success 200 {object} util.Response
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	lessons, err := c.LessonService.List(ctx.Query("subject"), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// Get godoc
// @Summary 课程详情
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	lesson, err := c.LessonService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// Complete godoc
// @Summary 完成课程
// @Description 标记课程完成并按难度发放积分，同一课程只发一次
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response "完成结果与可能的升级事件"
// @Failure 404 {object} util.Response "课程不存在"
// @Failure 409 {object} util.Response "课程已完成"
// @Router /api/lessons/{id}/complete [post]
func (c *LessonController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.LessonService.Complete(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrLessonCompleted):
			util.Error(ctx, 409, "课程已完成，不能重复领取奖励")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// CreateLessonRequest 新建课程请求
type CreateLessonRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Order       int    `json:"order"`
}

// Create godoc
// @Summary 新建课程
// @Description 教师/管理员创建课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateLessonRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response
// @Router /api/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		Subject:     req.Subject,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Order:       req.Order,
	}
	if err := c.LessonService.Create(lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UploadVideo godoc
// @Summary 上传课程视频
// @Description 上传视频并探测时长、生成封面
// @Tags 课程
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程 ID"
// @Param   video formData file true "视频文件"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response "文件类型不合法"
// @Router /api/lessons/{id}/video [post]
func (c *LessonController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "缺少视频文件")
		return
	}

	lesson, err := c.LessonService.UploadVideo(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), file)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, lesson)
}
