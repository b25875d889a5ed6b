package services

import (
	"time"

	"backend/config"
	"backend/models"
)

// RecordMealLog appends the audit row for one processed meal turn.
func RecordMealLog(userID uint, mealType models.MealType, rawText string, totals models.NutritionTotals) error {
	log := models.MealLog{
		UserID:   userID,
		MealType: string(mealType),
		RawText:  rawText,
		Calories: totals.Calories,
		Carbs:    totals.Carbs,
		Protein:  totals.Protein,
		Fat:      totals.Fat,
		AteAt:    time.Now(),
	}
	return config.DB.Create(&log).Error
}

// ListMealLogs returns the user's meal history, newest first.
func ListMealLogs(userID uint, limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var logs []models.MealLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
