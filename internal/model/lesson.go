package model

// Lesson 课程（教程章节），可挂一个视频资源
type Lesson struct {
	BaseModel
	Subject     string  `gorm:"size:50;index;not null"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text"`
	Difficulty  string  `gorm:"size:20;default:'medium'"` // easy / medium / hard
	Order       int     `gorm:"column:sort_order;default:0"`
	VideoURL    string  `gorm:"size:255"`
	Thumbnail   string  `gorm:"size:255"`
	Duration    float64 `gorm:"default:0"` // 视频时长（秒），上传时探测
	Published   bool    `gorm:"default:true"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// LessonCompletion 用户完成课程的记录，同一课程只计一次奖励
type LessonCompletion struct {
	BaseModel
	UserID   uint `gorm:"index:idx_user_lesson,unique;type:bigint unsigned;not null"`
	LessonID uint `gorm:"index:idx_user_lesson,unique;not null"`
	EarnedXP int  `gorm:"default:0"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}
