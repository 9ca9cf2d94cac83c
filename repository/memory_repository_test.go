package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryRangeIsInclusive(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		repo.AddHydration(models.HydrationLog{UserID: 1, Date: base.AddDate(0, 0, i), AmountML: 250})
	}

	rows, err := repo.Hydration(context.Background(), 1, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// ascending by date, both endpoints included
	assert.Equal(t, base.AddDate(0, 0, 1), rows[0].Date)
	assert.Equal(t, base.AddDate(0, 0, 3), rows[2].Date)
}

func TestMemoryRepositoryProfileAbsent(t *testing.T) {
	repo := NewMemoryRepository()
	p, err := repo.Profile(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryRepositoryErrPropagates(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Err = errors.New("connection reset")

	_, err := repo.Profile(context.Background(), 1)
	assert.ErrorContains(t, err, "connection reset")

	_, err = repo.Workouts(context.Background(), 1, time.Now(), time.Now())
	assert.ErrorContains(t, err, "connection reset")
}

func TestMemoryRepositoryUpdateProfile(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SeedProfile(models.FitnessProfile{UserID: 1, WeightKG: 80})

	var sched models.GoalSchedule
	sched.WorkoutDays.Add(time.Monday)
	require.NoError(t, repo.UpdateProfile(context.Background(), 1, ProfileUpdate{
		"schedule":  &sched,
		"weight_kg": 78.5,
	}))

	p, err := repo.Profile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 78.5, p.WeightKG)
	require.NotNil(t, p.Schedule)
	assert.True(t, p.Schedule.WorkoutDays.Has(time.Monday))

	// explicit nil clears the schedule
	require.NoError(t, repo.UpdateProfile(context.Background(), 1, ProfileUpdate{"schedule": nil}))
	p, err = repo.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, p.Schedule)
}
