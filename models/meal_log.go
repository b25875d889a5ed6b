package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog is the persisted audit row for one processed meal turn.
// The advisor's running profile stays in memory; these rows only keep
// a history of what was interpreted and counted.
type MealLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	MealType string `gorm:"size:16"`
	RawText  string `gorm:"type:text"` // the user's original statement
	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64
	AteAt    time.Time `gorm:"index"`
}
