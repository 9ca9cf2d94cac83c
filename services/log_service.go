package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// LogService is the write side for raw daily records. It sits outside the
// analytics engine boundary: the engine only ever reads these rows back
// through the MetricRepository.
type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService { return &LogService{db: db} }

func (s *LogService) LogHydration(userID uint, date time.Time, amountML float64) (*models.HydrationLog, error) {
	row := &models.HydrationLog{UserID: userID, Date: dayStart(date), AmountML: amountML}
	if err := s.db.Create(row).Error; err != nil {
		return nil, err
	}
	EmitInsightEvent(userID, "progress", fmt.Sprintf("Logged %.0f ml of water.", amountML))
	return row, nil
}

func (s *LogService) LogWorkout(userID uint, date time.Time, typ string, durationMin, caloriesBurned, exertion float64) (*models.WorkoutSession, error) {
	row := &models.WorkoutSession{
		UserID:            userID,
		Date:              dayStart(date),
		Type:              typ,
		DurationMin:       durationMin,
		CaloriesBurned:    caloriesBurned,
		PerceivedExertion: exertion,
	}
	if err := s.db.Create(row).Error; err != nil {
		return nil, err
	}
	EmitInsightEvent(userID, "progress", fmt.Sprintf("Logged a %.0f-minute %s session.", durationMin, typ))
	return row, nil
}

func (s *LogService) LogNutrition(userID uint, date time.Time, mealType string, calories, proteinG, carbsG, fatG float64) (*models.NutritionEntry, error) {
	row := &models.NutritionEntry{
		UserID:   userID,
		Date:     dayStart(date),
		MealType: mealType,
		Calories: calories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
	}
	if err := s.db.Create(row).Error; err != nil {
		return nil, err
	}
	EmitInsightEvent(userID, "progress", fmt.Sprintf("Logged %s (%.0f kcal).", mealType, calories))
	return row, nil
}

func (s *LogService) LogBodyMetric(userID uint, date time.Time, weightKG, bodyFatPct, waistCM, restingHR float64) (*models.BodyMetric, error) {
	row := &models.BodyMetric{
		UserID:     userID,
		Date:       dayStart(date),
		WeightKG:   weightKG,
		BodyFatPct: bodyFatPct,
		WaistCM:    waistCM,
		RestingHR:  restingHR,
	}
	if err := s.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// historyWindow widens from/to to inclusive full-day bounds. Rows are stored
// at local midnight, so the upper bound must stop short of the next day's
// midnight.
func historyWindow(from, to time.Time) (time.Time, time.Time) {
	return dayStart(from), dayEnd(to)
}

func (s *LogService) HydrationHistory(userID uint, from, to time.Time) ([]models.HydrationLog, error) {
	start, end := historyWindow(from, to)
	var rows []models.HydrationLog
	err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *LogService) WorkoutHistory(userID uint, from, to time.Time) ([]models.WorkoutSession, error) {
	start, end := historyWindow(from, to)
	var rows []models.WorkoutSession
	err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *LogService) NutritionHistory(userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	start, end := historyWindow(from, to)
	var rows []models.NutritionEntry
	err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *LogService) BodyMetricHistory(userID uint, from, to time.Time) ([]models.BodyMetric, error) {
	start, end := historyWindow(from, to)
	var rows []models.BodyMetric
	err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}
