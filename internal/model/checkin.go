package model

import (
	"time"
)

// Checkin 记录用户每日活跃签到，一天最多一条
// swagger:model Checkin
type Checkin struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_user_checkin_date,unique;type:bigint unsigned;not null"`
	CheckinAt  time.Time `gorm:"not null;index:idx_user_checkin_date,unique"`
	StreakDays int       `gorm:"default:1"` // 截至当日的连续签到天数
	BonusXP    int       `gorm:"default:0"` // 当日发放的连续签到奖励
}

func (Checkin) TableName() string {
	return "checkins"
}
