package models

import (
	"time"

	"gorm.io/gorm"
)

// Raw daily logs. Several rows may exist per (user, date, domain); the
// aggregator folds them into one record per day.

type HydrationLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncated to local midnight
	AmountML float64   // e.g. 250
}

type WorkoutSession struct {
	gorm.Model
	UserID            uint      `gorm:"index;not null"`
	Date              time.Time `gorm:"index;not null"`
	Type              string    // "running" | "cycling" | "strength" | ...
	DurationMin       float64
	CaloriesBurned    float64
	PerceivedExertion float64 // self-reported 1-10, 0 = not reported
}

type NutritionEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	MealType string    // "breakfast" | "lunch" | "dinner" | "snack"
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

type BodyMetric struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	Date       time.Time `gorm:"index;not null"`
	WeightKG   float64
	BodyFatPct float64 // 0 = not measured
	WaistCM    float64
	RestingHR  float64
}
