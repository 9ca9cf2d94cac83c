package services

import (
	"context"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"golang.org/x/sync/errgroup"
)

// EnergyService combines TDEE, workout burn and nutrition intake into a
// signed daily balance. A day with no logs is a valid day: intake and burn
// default to zero, so the balance is simply -TDEE.
type EnergyService struct {
	repo repository.MetricRepository
}

func NewEnergyService(repo repository.MetricRepository) *EnergyService {
	return &EnergyService{repo: repo}
}

func (s *EnergyService) Balance(ctx context.Context, userID uint, date time.Time) (models.EnergyBalance, error) {
	var (
		profile  *models.FitnessProfile
		workouts []models.WorkoutSession
		meals    []models.NutritionEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { profile, err = s.repo.Profile(gctx, userID); return })
	g.Go(func() (err error) { workouts, err = s.repo.Workouts(gctx, userID, date, date); return })
	g.Go(func() (err error) { meals, err = s.repo.Nutrition(gctx, userID, date, date); return })
	if err := g.Wait(); err != nil {
		return models.EnergyBalance{}, err
	}

	tdee := defaultCalories
	if profile != nil {
		if profile.TDEEKcal > 0 {
			tdee = profile.TDEEKcal
		} else if bmr, err := utils.BMR(profile.Sex, profile.WeightKG, profile.HeightCM, profile.Age); err == nil {
			tdee = utils.TDEE(bmr, profile.ActivityLevel)
		}
	}

	var intake, workoutBurn float64
	for _, m := range meals {
		intake += m.Calories
	}
	for _, w := range workouts {
		workoutBurn += w.CaloriesBurned
	}

	burned := tdee + workoutBurn
	return models.EnergyBalance{
		Date:       dayKey(date),
		IntakeKcal: round2(intake),
		BurnedKcal: round2(burned),
		TDEE:       round2(tdee),
		Balance:    round2(intake - burned),
	}, nil
}
