package models

import (
	"time"

	"gorm.io/gorm"
)

// Budget 分类预算
type Budget struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"userId" gorm:"index;not null"`
	Category  string         `json:"category" gorm:"size:50;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

func (Budget) TableName() string {
	return "budgets"
}
