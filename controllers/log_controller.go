// controllers/log_controller.go
package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Logs *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Logs: svc}
}

// bindDate parses an optional "date" body field, defaulting to today.
func bindDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func (h *LogController) LogHydration(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Date     string  `json:"date"`
		AmountML float64 `json:"amount_ml" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := bindDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	row, err := h.Logs.LogHydration(userID, date, body.AmountML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *LogController) LogWorkout(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Date              string  `json:"date"`
		Type              string  `json:"type" binding:"required"`
		DurationMin       float64 `json:"duration_min" binding:"required,gt=0"`
		CaloriesBurned    float64 `json:"calories_burned"`
		PerceivedExertion float64 `json:"perceived_exertion" binding:"omitempty,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := bindDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	row, err := h.Logs.LogWorkout(userID, date, body.Type, body.DurationMin, body.CaloriesBurned, body.PerceivedExertion)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *LogController) LogNutrition(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Date     string  `json:"date"`
		MealType string  `json:"meal_type" binding:"required"`
		Calories float64 `json:"calories" binding:"required,gt=0"`
		ProteinG float64 `json:"protein_g"`
		CarbsG   float64 `json:"carbs_g"`
		FatG     float64 `json:"fat_g"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := bindDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	row, err := h.Logs.LogNutrition(userID, date, body.MealType, body.Calories, body.ProteinG, body.CarbsG, body.FatG)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *LogController) LogBodyMetric(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Date       string  `json:"date"`
		WeightKG   float64 `json:"weight_kg" binding:"required,gt=0"`
		BodyFatPct float64 `json:"body_fat_pct" binding:"omitempty,gt=0,lt=100"`
		WaistCM    float64 `json:"waist_cm"`
		RestingHR  float64 `json:"resting_hr"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := bindDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	row, err := h.Logs.LogBodyMetric(userID, date, body.WeightKG, body.BodyFatPct, body.WaistCM, body.RestingHR)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// GetHistory serves the raw rows for one domain so the UI can chart them.
func (h *LogController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = d
	}
	if v := c.Query("to"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = d
	}

	var (
		rows any
		err  error
	)
	switch c.Param("domain") {
	case "hydration":
		rows, err = h.Logs.HydrationHistory(userID, from, to)
	case "workouts":
		rows, err = h.Logs.WorkoutHistory(userID, from, to)
	case "nutrition":
		rows, err = h.Logs.NutritionHistory(userID, from, to)
	case "body":
		rows, err = h.Logs.BodyMetricHistory(userID, from, to)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown log domain"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, rows)
}
