package models

import (
	"time"

	"gorm.io/gorm"
)

// Income 收入记录模型，Source 为收入来源（报表中作为分类）
type Income struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"userId" gorm:"index;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Source      string         `json:"source" gorm:"size:50;not null;index"`
	Date        time.Time      `json:"date" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

func (Income) TableName() string {
	return "incomes"
}
