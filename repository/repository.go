// Package repository defines the metric store contract the analytics engine
// depends on. All engine services take a MetricRepository instead of touching
// the database directly, so tests substitute the in-memory implementation.
package repository

import (
	"context"
	"time"

	"backend/models"
)

// ProfileUpdate maps profile column names to new values. Applied as a single
// UPDATE so readers never observe a half-written schedule.
type ProfileUpdate map[string]any

// MetricRepository is the engine's only I/O boundary. Read methods return rows
// ordered by date ascending; date ranges are inclusive. Profile returns
// (nil, nil) when the user has no profile; a missing profile is an expected
// state, not an error. Only store-level failures surface as errors.
type MetricRepository interface {
	Hydration(ctx context.Context, userID uint, from, to time.Time) ([]models.HydrationLog, error)
	Workouts(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkoutSession, error)
	Nutrition(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionEntry, error)
	BodyMetrics(ctx context.Context, userID uint, from, to time.Time) ([]models.BodyMetric, error)
	Profile(ctx context.Context, userID uint) (*models.FitnessProfile, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) error
}
