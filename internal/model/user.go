package model

import (
	"time"

	"learnplay_backend/internal/adaptive"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"Name"`
	Email    string   `gorm:"size:100;unique;not null" json:"Email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','teacher','admin');default:'student'" json:"Role"`

	// 游戏化账本字段，只由 GamificationService 写入
	XP             int       `gorm:"default:0" json:"XP"`     // 累计经验，驱动等级
	Points         int       `gorm:"default:0" json:"Points"` // 累计积分（货币），与经验同步增加
	Level          int       `gorm:"default:1" json:"Level"`  // 冗余存档，始终等于 XP/1000+1
	CurrentStreak  int       `gorm:"default:0" json:"CurrentStreak"`
	LastActiveDate time.Time `json:"LastActiveDate"` // 零值表示从未签到

	// 自适应练习层级
	ProficiencyLevel adaptive.ProficiencyLevel `gorm:"size:20;default:'basic'" json:"ProficiencyLevel"`

	Language  string    `gorm:"size:10;default:'en'" json:"Language"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Disabled  bool      `gorm:"default:false" json:"Disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastSeen"`
}

func (User) TableName() string {
	return "users"
}
