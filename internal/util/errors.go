package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrLessonNotFound       = errors.New("课程不存在")
	ErrLessonCompleted      = errors.New("课程已完成")
	ErrQuizNotFound         = errors.New("测验不存在")
	ErrQuizAlreadySubmitted = errors.New("测验已提交")
	ErrInvalidVideoExt      = errors.New("不支持的视频格式")
	ErrSessionNotFound      = errors.New("练习会话不存在")
	ErrSessionCompleted     = errors.New("练习会话已结束")
)
