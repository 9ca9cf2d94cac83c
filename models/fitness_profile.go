package models

import (
	"gorm.io/gorm"
)

// Fitness goal values accepted on a profile.
const (
	GoalLoseWeight     = "lose_weight"
	GoalMaintainWeight = "maintain_weight"
	GoalGainWeight     = "gain_weight"
	GoalBuildMuscle    = "build_muscle"
)

// FitnessProfile holds each user's attributes and daily targets. Every
// analytical service reads it; recommendation-application is the only writer
// besides the user, and writes land as a single UPDATE.
type FitnessProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Age            int
	Sex            string  // "male" | "female"
	HeightCM       float64 // e.g. 175
	WeightKG       float64 // e.g. 70
	ActivityLevel  string  // sedentary | lightly_active | moderately_active | very_active | extra_active
	FitnessGoal    string  // see Goal* constants
	TargetWeightKG float64

	DailyCalorieGoal float64 // kcal; 0 = derive from TDEE and goal
	DailyWaterGoalML float64 // ml; 0 = engine default
	TDEEKcal         float64 // precomputed TDEE; 0 = derive via Mifflin-St Jeor

	WeeklyOverride *WeeklyGoalOverride `gorm:"type:jsonb;serializer:json"`
	Schedule       *GoalSchedule       `gorm:"type:jsonb;serializer:json"`
}
