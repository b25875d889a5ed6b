package models

import "time"

type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Code      string `gorm:"size:40"` // advice rule code, e.g. "high_carbs"
	Type      string `gorm:"size:20"` // "warning" | "info"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
