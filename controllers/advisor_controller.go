package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /advisor/profile
type AdvisorProfileInput struct {
	Name     string  `json:"name" binding:"required"`
	Age      int     `json:"age" binding:"required,gt=0"`
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
	HbA1c    float64 `json:"hba1c" binding:"required,gt=0"`
}

func SetAdvisorProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AdvisorProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := services.Sessions().Get(uid)
	services.Advisor().SetProfile(sess, input.Name, input.Age, input.WeightKg, input.HeightCm, input.HbA1c)

	resp := gin.H{
		"message":              "profile saved",
		"daily_calorie_target": sess.Snapshot().DailyCalorieTarget,
	}
	if bmi, err := utils.CalculateBMI(input.HeightCm, input.WeightKg); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}

// POST /advisor/steps
func SetAdvisorSteps(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Steps int `json:"steps" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := services.Sessions().Get(uid)
	services.Advisor().SetSteps(sess, body.Steps)

	snap := sess.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"steps_today":          snap.StepsToday,
		"daily_calorie_target": snap.DailyCalorieTarget,
	})
}

// POST /advisor/message — one free-text turn through the pipeline.
func AdvisorMessage(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := services.Sessions().Get(uid)
	result := services.Advisor().Respond(sess, body.Text)

	if result.Kind == services.TurnMeal {
		if err := services.RecordMealLog(uid, result.MealType, body.Text, result.Totals); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		services.EmitAdviceAlerts(uid, result.Suggestions)
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"session": sess.Snapshot(),
	})
}

// GET /advisor/session
func GetAdvisorSession(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, services.Sessions().Get(uid).Snapshot())
}

// GET /advisor/history
func GetMealHistory(c *gin.Context) {
	uid := c.GetUint("userID")
	logs, err := services.ListMealLogs(uid, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
