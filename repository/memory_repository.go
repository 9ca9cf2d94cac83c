package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"backend/models"
)

// MemoryRepository is the in-memory MetricRepository used by service tests.
// Reads honor the same inclusive date-range and ordering semantics as the
// postgres implementation. Err, when set, is returned from every call to
// exercise repository-failure propagation.
type MemoryRepository struct {
	mu        sync.RWMutex
	Err       error
	profiles  map[uint]models.FitnessProfile
	hydration map[uint][]models.HydrationLog
	workouts  map[uint][]models.WorkoutSession
	nutrition map[uint][]models.NutritionEntry
	body      map[uint][]models.BodyMetric
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles:  make(map[uint]models.FitnessProfile),
		hydration: make(map[uint][]models.HydrationLog),
		workouts:  make(map[uint][]models.WorkoutSession),
		nutrition: make(map[uint][]models.NutritionEntry),
		body:      make(map[uint][]models.BodyMetric),
	}
}

func (r *MemoryRepository) SeedProfile(p models.FitnessProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
}

func (r *MemoryRepository) AddHydration(rows ...models.HydrationLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.hydration[row.UserID] = append(r.hydration[row.UserID], row)
	}
}

func (r *MemoryRepository) AddWorkouts(rows ...models.WorkoutSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.workouts[row.UserID] = append(r.workouts[row.UserID], row)
	}
}

func (r *MemoryRepository) AddNutrition(rows ...models.NutritionEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.nutrition[row.UserID] = append(r.nutrition[row.UserID], row)
	}
}

func (r *MemoryRepository) AddBodyMetrics(rows ...models.BodyMetric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.body[row.UserID] = append(r.body[row.UserID], row)
	}
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(dayStart(from)) && !d.After(dayEnd(to))
}

func (r *MemoryRepository) Hydration(_ context.Context, userID uint, from, to time.Time) ([]models.HydrationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.HydrationLog
	for _, row := range r.hydration[userID] {
		if inRange(row.Date, from, to) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryRepository) Workouts(_ context.Context, userID uint, from, to time.Time) ([]models.WorkoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.WorkoutSession
	for _, row := range r.workouts[userID] {
		if inRange(row.Date, from, to) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryRepository) Nutrition(_ context.Context, userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.NutritionEntry
	for _, row := range r.nutrition[userID] {
		if inRange(row.Date, from, to) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryRepository) BodyMetrics(_ context.Context, userID uint, from, to time.Time) ([]models.BodyMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.BodyMetric
	for _, row := range r.body[userID] {
		if inRange(row.Date, from, to) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryRepository) Profile(_ context.Context, userID uint) (*models.FitnessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *MemoryRepository) UpdateProfile(_ context.Context, userID uint, update ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p := r.profiles[userID]
	p.UserID = userID
	for col, v := range update {
		switch col {
		case "weight_kg":
			p.WeightKG = v.(float64)
		case "target_weight_kg":
			p.TargetWeightKG = v.(float64)
		case "daily_calorie_goal":
			p.DailyCalorieGoal = v.(float64)
		case "daily_water_goal_ml":
			p.DailyWaterGoalML = v.(float64)
		case "activity_level":
			p.ActivityLevel = v.(string)
		case "fitness_goal":
			p.FitnessGoal = v.(string)
		case "weekly_override":
			if v == nil {
				p.WeeklyOverride = nil
			} else {
				p.WeeklyOverride = v.(*models.WeeklyGoalOverride)
			}
		case "schedule":
			if v == nil {
				p.Schedule = nil
			} else {
				p.Schedule = v.(*models.GoalSchedule)
			}
		}
	}
	r.profiles[userID] = p
	return nil
}
