package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal 储蓄目标
// CurrentAmount 只能通过进度更新接口修改，不与 TargetAmount 比较（允许超额）
type Goal struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        uint           `json:"userId" gorm:"index;not null"`
	Name          string         `json:"name" gorm:"size:100;not null"`
	Category      string         `json:"category" gorm:"size:50;not null"`
	TargetAmount  float64        `json:"targetAmount" gorm:"type:decimal(12,2);not null"`
	CurrentAmount float64        `json:"currentAmount" gorm:"type:decimal(12,2);not null;default:0"`
	Deadline      time.Time      `json:"deadline" gorm:"not null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	User          User           `json:"-" gorm:"foreignKey:UserID"`
}

func (Goal) TableName() string {
	return "goals"
}
