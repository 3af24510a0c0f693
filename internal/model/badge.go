package model

// Badge 用户获得的徽章（升级、连续签到里程碑等）
type Badge struct {
	BaseModel
	UserID      uint   `gorm:"index:idx_user_badge,unique;type:bigint unsigned"`
	Code        string `gorm:"size:50;index:idx_user_badge,unique;not null"` // 同一徽章只发一次
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:255"`
	Icon        string `gorm:"size:255"`
	EarnedXP    int    `gorm:"default:0"`
}

func (Badge) TableName() string {
	return "badges"
}
