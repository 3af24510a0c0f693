package model

// SubjectProgress 每个学科的完成百分比，0-100，课程完成时 +10 封顶
type SubjectProgress struct {
	BaseModel
	UserID  uint   `gorm:"index:idx_user_subject,unique;type:bigint unsigned;not null"`
	Subject string `gorm:"size:50;index:idx_user_subject,unique;not null"`
	Percent int    `gorm:"default:0"`
}

func (SubjectProgress) TableName() string {
	return "subject_progress"
}
