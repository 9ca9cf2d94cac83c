package services

import (
	"context"
	"math"
	"time"

	"backend/models"
	"backend/repository"
)

// AggregateService folds raw per-event logs into one tagged record per
// (day, domain). Days with no logs are absent from the result; sparse series
// are the expected common case, and emptiness is a valid answer.
type AggregateService struct {
	repo repository.MetricRepository
}

func NewAggregateService(repo repository.MetricRepository) *AggregateService {
	return &AggregateService{repo: repo}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (s *AggregateService) HydrationByDay(ctx context.Context, userID uint, from, to time.Time) (map[string]models.HydrationDay, error) {
	rows, err := s.repo.Hydration(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.HydrationDay, len(rows))
	for _, r := range rows {
		key := dayKey(r.Date)
		day := out[key]
		day.Date = key
		day.TotalML += r.AmountML
		day.Entries++
		out[key] = day
	}
	return out, nil
}

func (s *AggregateService) WorkoutsByDay(ctx context.Context, userID uint, from, to time.Time) (map[string]models.WorkoutDay, error) {
	rows, err := s.repo.Workouts(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	// exertion averages only over sessions that reported it
	reported := make(map[string]int)
	out := make(map[string]models.WorkoutDay, len(rows))
	for _, r := range rows {
		key := dayKey(r.Date)
		day := out[key]
		day.Date = key
		day.Sessions++
		day.DurationMin += r.DurationMin
		day.CaloriesBurned += r.CaloriesBurned
		if r.PerceivedExertion > 0 {
			day.AvgExertion += r.PerceivedExertion
			reported[key]++
		}
		out[key] = day
	}
	for key, n := range reported {
		day := out[key]
		day.AvgExertion = round2(day.AvgExertion / float64(n))
		out[key] = day
	}
	return out, nil
}

func (s *AggregateService) NutritionByDay(ctx context.Context, userID uint, from, to time.Time) (map[string]models.NutritionDay, error) {
	rows, err := s.repo.Nutrition(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.NutritionDay, len(rows))
	for _, r := range rows {
		key := dayKey(r.Date)
		day := out[key]
		day.Date = key
		day.Meals++
		day.Calories += r.Calories
		day.ProteinG += r.ProteinG
		day.CarbsG += r.CarbsG
		day.FatG += r.FatG
		out[key] = day
	}
	return out, nil
}

func (s *AggregateService) BodyByDay(ctx context.Context, userID uint, from, to time.Time) (map[string]models.BodyDay, error) {
	rows, err := s.repo.BodyMetrics(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	out := make(map[string]models.BodyDay, len(rows))
	for _, r := range rows {
		key := dayKey(r.Date)
		day := out[key]
		day.Date = key
		day.WeightKG += r.WeightKG
		day.BodyFatPct += r.BodyFatPct
		counts[key]++
		out[key] = day
	}
	for key, n := range counts {
		day := out[key]
		day.WeightKG = round2(day.WeightKG / float64(n))
		day.BodyFatPct = round2(day.BodyFatPct / float64(n))
		out[key] = day
	}
	return out, nil
}
