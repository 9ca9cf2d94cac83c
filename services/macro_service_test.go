package services

import (
	"context"
	"testing"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeMacrosBaseSplit(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{
		UserID:           1,
		FitnessGoal:      models.GoalMaintainWeight,
		DailyCalorieGoal: 2000,
	})
	svc := NewMacroService(repo)

	plan, err := svc.OptimizeMacros(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, plan.Calories)
	assert.Equal(t, 125, plan.ProteinG)
	assert.Equal(t, 225, plan.CarbsG)
	assert.Equal(t, 67, plan.FatG)
	assert.Equal(t, models.MacroRatios{ProteinPct: 25, CarbsPct: 45, FatPct: 30}, plan.Ratios)
	assert.Empty(t, plan.Reasoning)
}

func TestOptimizeMacrosBuildMuscle(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{
		UserID:           1,
		FitnessGoal:      models.GoalBuildMuscle,
		DailyCalorieGoal: 2000,
	})
	svc := NewMacroService(repo)

	plan, err := svc.OptimizeMacros(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 150, plan.ProteinG)
	assert.Equal(t, models.MacroRatios{ProteinPct: 30, CarbsPct: 45, FatPct: 25}, plan.Ratios)
	assert.Contains(t, plan.Reasoning, "muscle")
}

func TestOptimizeMacrosHighIntensityShiftsCarbs(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{
		UserID:           1,
		FitnessGoal:      models.GoalLoseWeight,
		DailyCalorieGoal: 2000,
	})
	// hard sessions every other day inside the 14-day lookback
	for _, offset := range []int{1, 3, 5} {
		repo.AddWorkouts(models.WorkoutSession{
			UserID: 1, Date: day(offset), Type: "hiit", DurationMin: 30, PerceivedExertion: 9,
		})
	}
	svc := NewMacroService(repo)

	plan, err := svc.OptimizeMacros(context.Background(), 1)
	require.NoError(t, err)
	// lose_weight split 35/35/30, intensity shifts 5% from fat to carbs
	assert.Equal(t, models.MacroRatios{ProteinPct: 35, CarbsPct: 40, FatPct: 25}, plan.Ratios)
	assert.Equal(t, 175, plan.ProteinG)
	assert.Equal(t, 200, plan.CarbsG)
	assert.Contains(t, plan.Reasoning, "deficit")
	assert.Contains(t, plan.Reasoning, "high-intensity")
}

func TestOptimizeMacrosGramsMatchCalories(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{
		UserID:           1,
		FitnessGoal:      models.GoalBuildMuscle,
		DailyCalorieGoal: 2600,
	})
	svc := NewMacroService(repo)

	plan, err := svc.OptimizeMacros(context.Background(), 1)
	require.NoError(t, err)
	sum := float64(plan.ProteinG)*utils.KcalPerGramProtein +
		float64(plan.CarbsG)*utils.KcalPerGramCarbs +
		float64(plan.FatG)*utils.KcalPerGramFat
	// gram rounding may drift the total by a few kcal, never more
	assert.InDelta(t, plan.Calories, sum, 10)
}

func TestOptimizeMacrosNoProfile(t *testing.T) {
	svc := NewMacroService(repository.NewMemoryRepository())

	plan, err := svc.OptimizeMacros(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, plan.Calories)
	assert.Equal(t, models.MacroRatios{ProteinPct: 25, CarbsPct: 45, FatPct: 30}, plan.Ratios)
}

func TestApplySchedule(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{UserID: 1, DailyCalorieGoal: 2000})
	svc := NewMacroService(repo)

	var sched models.GoalSchedule
	sched.WorkoutDays.Add(time.Monday)
	sched.RefeedDays.Add(time.Sunday)
	require.NoError(t, svc.ApplySchedule(context.Background(), 1, sched))

	p, err := repo.Profile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p.Schedule)
	assert.True(t, p.Schedule.WorkoutDays.Has(time.Monday))
	assert.True(t, p.Schedule.RefeedDays.Has(time.Sunday))
}

func TestApplyScheduleWithoutProfile(t *testing.T) {
	svc := NewMacroService(repository.NewMemoryRepository())
	err := svc.ApplySchedule(context.Background(), 1, models.GoalSchedule{})
	assert.Error(t, err)
}

func TestRecoveryScore(t *testing.T) {
	sessions := func(offsets ...int) []models.WorkoutSession {
		out := make([]models.WorkoutSession, 0, len(offsets))
		// repository order is date-ascending
		for i := len(offsets) - 1; i >= 0; i-- {
			out = append(out, models.WorkoutSession{Date: day(offsets[i])})
		}
		return out
	}

	assert.Equal(t, float64(recoveryDefault), recoveryScore(nil))
	assert.Equal(t, float64(recoveryOptimal), recoveryScore(sessions(0, 2, 4)))
	assert.Equal(t, float64(recoveryDetrained), recoveryScore(sessions(0, 4, 8)))
	// several sessions on the same days pull the average gap under one day
	assert.Equal(t, float64(recoveryOvertraining), recoveryScore(sessions(0, 0, 1, 1)))
}
