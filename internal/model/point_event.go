package model

// PointEvent 账本流水：每次加分一条，记录变更前后的等级便于审计升级事件
type PointEvent struct {
	BaseModel
	UserID      uint   `gorm:"index;type:bigint unsigned;not null"`
	Amount      int    `gorm:"not null"`
	Reason      string `gorm:"size:255"`
	LevelBefore int    `gorm:"not null"`
	LevelAfter  int    `gorm:"not null"`
}

func (PointEvent) TableName() string {
	return "point_events"
}

// LeveledUp 本条流水是否跨过了等级边界
func (e PointEvent) LeveledUp() bool {
	return e.LevelAfter > e.LevelBefore
}
