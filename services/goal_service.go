package services

import (
	"context"
	"math"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"
)

// Hard-coded fallbacks when no profile exists.
const (
	defaultCalories = 2000.0
	defaultProteinG = 50.0
	defaultCarbsG   = 250.0
	defaultFatG     = 65.0
	defaultWaterML  = 2000.0
	defaultSteps    = 10000
)

// GoalService resolves the effective daily goal set for (user, date) with a
// strict precedence: weekday override, then schedule rules, then profile
// defaults. Resolution is deterministic: the same inputs always produce the
// same goals.
type GoalService struct {
	repo repository.MetricRepository
}

func NewGoalService(repo repository.MetricRepository) *GoalService {
	return &GoalService{repo: repo}
}

func defaultDailyGoals() models.DailyGoals {
	return models.DailyGoals{
		Calories: defaultCalories,
		ProteinG: defaultProteinG,
		CarbsG:   defaultCarbsG,
		FatG:     defaultFatG,
		WaterML:  defaultWaterML,
		Steps:    defaultSteps,
	}
}

func (s *GoalService) ResolveDailyGoals(ctx context.Context, userID uint, date time.Time) (models.DailyGoals, error) {
	p, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return models.DailyGoals{}, err
	}
	if p == nil {
		return defaultDailyGoals(), nil
	}

	weekday := date.Weekday()

	// 1. explicit weekday override wins verbatim, no merging
	if o := p.WeeklyOverride.For(weekday); o != nil {
		return *o, nil
	}

	// 2. profile defaults
	g := models.DailyGoals{
		Calories: p.DailyCalorieGoal,
		WaterML:  p.DailyWaterGoalML,
		Steps:    defaultSteps,
	}
	if g.Calories <= 0 {
		g.Calories = derivedCalorieGoal(p)
	}
	if g.WaterML <= 0 {
		g.WaterML = defaultWaterML
	}
	// macro defaults from the base 25/45/30 split so resolved goals are complete
	g.ProteinG = math.Round(g.Calories * 0.25 / utils.KcalPerGramProtein)
	g.CarbsG = math.Round(g.Calories * 0.45 / utils.KcalPerGramCarbs)
	g.FatG = math.Round(g.Calories * 0.30 / utils.KcalPerGramFat)

	// 3. schedule rules, cumulative, in a fixed order so results are
	// deterministic when a weekday belongs to multiple sets
	if sched := p.Schedule; sched != nil {
		if sched.WorkoutDays.Has(weekday) {
			g.Calories *= 1.10
			g.WaterML += 500
		}
		if sched.HighProteinDays.Has(weekday) {
			g.ProteinG = math.Round(g.Calories * 0.35 / utils.KcalPerGramProtein)
		}
		if sched.RefeedDays.Has(weekday) {
			g.Calories *= 1.20
			g.CarbsG = math.Round(g.Calories * 0.50 / utils.KcalPerGramCarbs)
		}
	}
	g.Calories = round2(g.Calories)
	return g, nil
}

// Workout hydration bonuses in ml per minute.
const (
	cardioMLPerMin  = 15.0
	defaultMLPerMin = 10.0
	summerBonusML   = 500.0
	mlPerKG         = 30.0
)

var cardioTypes = map[string]bool{
	"running":  true,
	"cycling":  true,
	"swimming": true,
	"cardio":   true,
	"hiit":     true,
	"rowing":   true,
}

// DynamicHydrationGoal computes the day's water target from the base goal,
// body weight, logged workout minutes and a summer-months heuristic. Weekday
// overrides are deliberately not consulted here.
func (s *GoalService) DynamicHydrationGoal(ctx context.Context, userID uint, date time.Time) (int, error) {
	p, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return 0, err
	}

	goal := defaultWaterML
	if p != nil {
		if p.DailyWaterGoalML > 0 {
			goal = p.DailyWaterGoalML
		}
		if byWeight := p.WeightKG * mlPerKG; byWeight > goal {
			goal = byWeight
		}
	}

	workouts, err := s.repo.Workouts(ctx, userID, date, date)
	if err != nil {
		return 0, err
	}
	for _, w := range workouts {
		if cardioTypes[w.Type] {
			goal += w.DurationMin * cardioMLPerMin
		} else {
			goal += w.DurationMin * defaultMLPerMin
		}
	}

	if m := date.Month(); m >= time.June && m <= time.September {
		goal += summerBonusML
	}
	return int(math.Round(goal)), nil
}
