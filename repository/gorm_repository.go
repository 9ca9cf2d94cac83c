package repository

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// GormRepository is the postgres-backed MetricRepository.
type GormRepository struct{ db *gorm.DB }

func NewGormRepository(db *gorm.DB) *GormRepository { return &GormRepository{db: db} }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (r *GormRepository) Hydration(ctx context.Context, userID uint, from, to time.Time) ([]models.HydrationLog, error) {
	var rows []models.HydrationLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormRepository) Workouts(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkoutSession, error) {
	var rows []models.WorkoutSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormRepository) Nutrition(ctx context.Context, userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	var rows []models.NutritionEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormRepository) BodyMetrics(ctx context.Context, userID uint, from, to time.Time) ([]models.BodyMetric, error) {
	var rows []models.BodyMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormRepository) Profile(ctx context.Context, userID uint) (*models.FitnessProfile, error) {
	var p models.FitnessProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormRepository) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) error {
	if len(update) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.FitnessProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any(update)).Error
}
