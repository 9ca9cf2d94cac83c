package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"
)

// Recovery scores derived from inter-workout gaps.
const (
	recoveryOptimal      = 9 // 1-2 day gaps
	recoveryOvertraining = 5 // multiple sessions per day
	recoveryDetrained    = 6 // gaps over 3 days
	recoveryDefault      = 7
)

// MacroService derives protein/carb/fat gram targets from the fitness goal,
// recent training intensity and the recovery signal.
type MacroService struct {
	repo repository.MetricRepository
}

func NewMacroService(repo repository.MetricRepository) *MacroService {
	return &MacroService{repo: repo}
}

func (s *MacroService) OptimizeMacros(ctx context.Context, userID uint) (*models.MacroPlan, error) {
	p, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	workouts, err := s.repo.Workouts(ctx, userID, now.AddDate(0, 0, -14), now)
	if err != nil {
		return nil, err
	}

	calories := defaultCalories
	goal := ""
	if p != nil {
		goal = p.FitnessGoal
		if p.DailyCalorieGoal > 0 {
			calories = p.DailyCalorieGoal
		} else {
			calories = derivedCalorieGoal(p)
		}
	}

	avgIntensity := averageIntensity(workouts)
	recovery := recoveryScore(workouts)

	// base split
	protein, carbs, fat := 0.25, 0.45, 0.30
	var rationale []string

	switch goal {
	case models.GoalBuildMuscle:
		protein, carbs, fat = 0.30, 0.45, 0.25
		rationale = append(rationale, "Protein share raised to support muscle building.")
	case models.GoalLoseWeight:
		protein, carbs, fat = 0.35, 0.35, 0.30
		rationale = append(rationale, "Higher protein to preserve lean mass in a calorie deficit.")
	}

	if avgIntensity > 7 {
		carbs += 0.05
		fat -= 0.05
		rationale = append(rationale, "Extra carbohydrates to fuel recent high-intensity training.")
	}
	if recovery < recoveryOvertraining {
		protein += 0.05
		carbs -= 0.05
		rationale = append(rationale, "Additional protein to support recovery between sessions.")
	}

	plan := &models.MacroPlan{
		Calories: calories,
		ProteinG: int(math.Round(calories * protein / utils.KcalPerGramProtein)),
		CarbsG:   int(math.Round(calories * carbs / utils.KcalPerGramCarbs)),
		FatG:     int(math.Round(calories * fat / utils.KcalPerGramFat)),
		Ratios: models.MacroRatios{
			ProteinPct: int(math.Round(protein * 100)),
			CarbsPct:   int(math.Round(carbs * 100)),
			FatPct:     int(math.Round(fat * 100)),
		},
		Reasoning: strings.Join(rationale, " "),
	}
	return plan, nil
}

// ApplySchedule persists a recommended goal schedule onto the profile as one
// atomic update, the only write path through the engine.
func (s *MacroService) ApplySchedule(ctx context.Context, userID uint, schedule models.GoalSchedule) error {
	p, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.New("no fitness profile to apply a schedule to")
	}
	if err := s.repo.UpdateProfile(ctx, userID, repository.ProfileUpdate{"schedule": &schedule}); err != nil {
		return err
	}
	EmitInsightEvent(userID, "schedule", "A training schedule was applied to your daily goals.")
	return nil
}

// averageIntensity is the mean perceived exertion over rated sessions,
// defaulting to a middling 5 when nothing was rated.
func averageIntensity(workouts []models.WorkoutSession) float64 {
	var values []float64
	for _, w := range workouts {
		if w.PerceivedExertion > 0 {
			values = append(values, w.PerceivedExertion)
		}
	}
	if len(values) == 0 {
		return 5
	}
	return mean(values)
}

// recoveryScore rates the average gap between consecutive sessions: 1-2 days
// is optimal, under 1 (several sessions on the same day) flags overtraining
// risk, over 3 means detraining, anything between lands in the middle.
// Sessions arrive date-ascending from the repository.
func recoveryScore(workouts []models.WorkoutSession) float64 {
	if len(workouts) < 2 {
		return recoveryDefault
	}
	var totalGap float64
	for i := 1; i < len(workouts); i++ {
		totalGap += workouts[i].Date.Sub(workouts[i-1].Date).Hours() / 24
	}
	avgGap := totalGap / float64(len(workouts)-1)

	switch {
	case avgGap >= 1 && avgGap <= 2:
		return recoveryOptimal
	case avgGap < 1:
		return recoveryOvertraining
	case avgGap > 3:
		return recoveryDetrained
	default:
		return recoveryDefault
	}
}
