package services

import (
	"context"
	"errors"
	"testing"

	"backend/models"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceDeficitDay(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{UserID: 1, TDEEKcal: 2748})
	repo.AddNutrition(models.NutritionEntry{UserID: 1, Date: day(0), Calories: 1800})
	svc := NewEnergyService(repo)

	b, err := svc.Balance(context.Background(), 1, day(0))
	require.NoError(t, err)
	assert.Equal(t, dayKey(day(0)), b.Date)
	assert.Equal(t, 1800.0, b.IntakeKcal)
	assert.Equal(t, 2748.0, b.TDEE)
	assert.Equal(t, 2748.0, b.BurnedKcal)
	assert.Equal(t, -948.0, b.Balance)
}

func TestBalanceIncludesWorkoutBurn(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{UserID: 1, TDEEKcal: 2748})
	repo.AddNutrition(models.NutritionEntry{UserID: 1, Date: day(0), Calories: 1800})
	repo.AddWorkouts(models.WorkoutSession{UserID: 1, Date: day(0), Type: "running", DurationMin: 40, CaloriesBurned: 400})
	svc := NewEnergyService(repo)

	b, err := svc.Balance(context.Background(), 1, day(0))
	require.NoError(t, err)
	assert.Equal(t, 3148.0, b.BurnedKcal)
	assert.Equal(t, -1348.0, b.Balance)
}

func TestBalanceEmptyDayIsValid(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{UserID: 1, TDEEKcal: 2500})
	svc := NewEnergyService(repo)

	b, err := svc.Balance(context.Background(), 1, day(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.IntakeKcal)
	assert.Equal(t, -2500.0, b.Balance)
}

func TestBalanceDerivesTDEEFromProfile(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{
		UserID:        1,
		Age:           30,
		Sex:           "male",
		HeightCM:      175,
		WeightKG:      70,
		ActivityLevel: "moderately_active",
	})
	svc := NewEnergyService(repo)

	b, err := svc.Balance(context.Background(), 1, day(0))
	require.NoError(t, err)
	// Mifflin-St Jeor 1648.75 * 1.55
	assert.InDelta(t, 2555.56, b.TDEE, 0.01)
}

func TestBalanceWithoutProfileUsesDefault(t *testing.T) {
	svc := NewEnergyService(repository.NewMemoryRepository())

	b, err := svc.Balance(context.Background(), 1, day(0))
	require.NoError(t, err)
	assert.Equal(t, 2000.0, b.TDEE)
	assert.Equal(t, -2000.0, b.Balance)
}

func TestBalanceRepositoryError(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.Err = errors.New("db down")
	svc := NewEnergyService(repo)

	_, err := svc.Balance(context.Background(), 1, day(0))
	assert.ErrorContains(t, err, "db down")
}
