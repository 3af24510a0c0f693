package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"learnplay_backend/internal/config"
	"learnplay_backend/internal/model"
	"learnplay_backend/internal/progression"
	"learnplay_backend/internal/repository"
	"learnplay_backend/internal/util"
	"learnplay_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const subjectProgressStep = 10 // 每完成一课学科进度 +10

type LessonService struct {
	LessonRepo     *repository.LessonRepository
	ProgressRepo   *repository.ProgressRepository
	Gamification   *GamificationService
	StorageService *StorageService
	Cfg            *config.Config
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	progressRepo *repository.ProgressRepository,
	gamification *GamificationService,
	storageService *StorageService,
	cfg *config.Config,
) *LessonService {
	return &LessonService{
		LessonRepo:     lessonRepo,
		ProgressRepo:   progressRepo,
		Gamification:   gamification,
		StorageService: storageService,
		Cfg:            cfg,
	}
}

// LessonView 课程加上当前用户的完成标记
type LessonView struct {
	model.Lesson
	Completed bool `json:"Completed"`
	Points    int  `json:"Points"` // 完成奖励
}

func (s *LessonService) List(subject string, userID uint) ([]LessonView, error) {
	lessons, err := s.LessonRepo.List(subject)
	if err != nil {
		return nil, err
	}

	completed := map[uint]bool{}
	if userID > 0 {
		ids, err := s.LessonRepo.CompletedLessonIDs(userID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			completed[id] = true
		}
	}

	views := make([]LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		views = append(views, LessonView{
			Lesson:    lesson,
			Completed: completed[lesson.ID],
			Points:    progression.LessonPoints(lesson.Difficulty),
		})
	}
	return views, nil
}

func (s *LessonService) Get(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	return lesson, err
}

// Complete 标记课程完成并发奖。同一课程只发一次，重复完成返回 ErrLessonCompleted。
func (s *LessonService) Complete(userID, lessonID uint) (*AwardResult, error) {
	lesson, err := s.Get(lessonID)
	if err != nil {
		return nil, err
	}

	done, err := s.LessonRepo.IsCompleted(userID, lessonID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, util.ErrLessonCompleted
	}

	points := progression.LessonPoints(lesson.Difficulty)
	reason := "Completed lesson: " + lesson.Title

	var result *AwardResult
	err = s.Gamification.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = s.Gamification.award(tx, userID, points, reason, "lesson")
		if err != nil {
			return err
		}

		completion := &model.LessonCompletion{
			UserID:   userID,
			LessonID: lessonID,
			EarnedXP: points,
		}
		if err := s.LessonRepo.SaveCompletion(tx, completion); err != nil {
			return err
		}

		_, err = s.ProgressRepo.Increment(tx, userID, lesson.Subject, subjectProgressStep)
		return err
	})
	// 并发重复完成由 (user_id, lesson_id) 唯一索引兜底，整个事务回滚
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, util.ErrLessonCompleted
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UploadVideo 上传课程视频：探测时长、抓帧做封面，再写回课程
func (s *LessonService) UploadVideo(ctx context.Context, lessonID uint, file *multipart.FileHeader) (*model.Lesson, error) {
	lesson, err := s.Get(lessonID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	valid := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			valid = true
			break
		}
	}
	if !valid {
		return nil, util.ErrInvalidVideoExt
	}

	videoFilename := "videos/" + time.Now().Format("20060102150405") + "-" +
		strings.ReplaceAll(file.Filename, " ", "-")

	// 临时保存到本地进行处理
	tempDir := filepath.Join(s.Cfg.Storage.LocalPath, "temp")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, err
	}

	videoPath := filepath.Join(tempDir, fmt.Sprintf("temp_video_%d%s", time.Now().UnixNano(), ext))
	defer os.Remove(videoPath)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 深度验证 MIME 类型
	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo}); err != nil {
		return nil, fmt.Errorf("非法的文件内容，仅允许视频格式: %v", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	dst, err := os.Create(videoPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	videoURL, err := s.StorageService.UploadFile(ctx, videoFilename, videoPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	// 生成缩略图，失败时退回默认封面
	thumbnailFilename := "thumbnails/" + time.Now().Format("20060102150405") + "-" +
		strings.ReplaceAll(strings.TrimSuffix(file.Filename, ext), " ", "-") + ".jpg"
	thumbnailPath := filepath.Join(tempDir, filepath.Base(thumbnailFilename))
	defer os.Remove(thumbnailPath)

	var thumbnailURL string
	if err := util.GenerateThumbnail(videoPath, thumbnailPath, "3"); err != nil {
		logger.Log.Error("生成缩略图失败", zap.Error(err))
		thumbnailURL = s.StorageService.GetURL("thumbnails/default-video-thumbnail.jpg")
	} else {
		thumbnailURL, err = s.StorageService.UploadFile(ctx, thumbnailFilename, thumbnailPath, "image/jpeg")
		if err != nil {
			thumbnailURL = s.StorageService.GetURL("thumbnails/default-video-thumbnail.jpg")
		}
	}

	var duration float64
	if info, err := util.ProbeVideo(videoPath); err == nil {
		duration = info.Duration
	} else {
		logger.Log.Warn("探测视频时长失败", zap.Error(err))
	}

	lesson.VideoURL = videoURL
	lesson.Thumbnail = thumbnailURL
	lesson.Duration = duration
	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Create(lesson *model.Lesson) error {
	if lesson.Difficulty == "" {
		lesson.Difficulty = "medium"
	}
	return s.LessonRepo.Create(lesson)
}
