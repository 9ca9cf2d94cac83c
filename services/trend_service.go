package services

import (
	"context"
	"fmt"
	"time"

	"backend/models"
	"backend/repository"

	"golang.org/x/sync/errgroup"
)

// Direction thresholds: movement beyond ±5% week-over-week counts as a trend,
// anything inside that band is noise.
const (
	trendThresholdPct = 5.0
	minTrendDays      = 7
)

// TrendService computes week-over-week movement per metric domain, with
// heuristic cross-domain correlation notes attached where they apply.
type TrendService struct {
	agg *AggregateService
}

func NewTrendService(repo repository.MetricRepository) *TrendService {
	return &TrendService{agg: NewAggregateService(repo)}
}

// AnalyzeTrends reports one TrendResult per analyzable domain over the
// trailing window, in a stable order: hydration, workout consistency,
// nutrition adherence, body composition, correlation-derived entries last.
// Domains without enough data are skipped, never errored.
func (s *TrendService) AnalyzeTrends(ctx context.Context, userID uint, days int) ([]models.TrendResult, error) {
	if days < 2*minTrendDays {
		days = 2 * minTrendDays
	}
	now := time.Now()
	from := dayStart(now).AddDate(0, 0, -(days - 1))

	var (
		hyd  map[string]models.HydrationDay
		wo   map[string]models.WorkoutDay
		nut  map[string]models.NutritionDay
		body map[string]models.BodyDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { hyd, err = s.agg.HydrationByDay(gctx, userID, from, now); return })
	g.Go(func() (err error) { wo, err = s.agg.WorkoutsByDay(gctx, userID, from, now); return })
	g.Go(func() (err error) { nut, err = s.agg.NutritionByDay(gctx, userID, from, now); return })
	g.Go(func() (err error) { body, err = s.agg.BodyByDay(gctx, userID, from, now); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// bucket cut points: last 7 calendar days vs the 7 before them
	recentKey := dayKey(dayStart(now).AddDate(0, 0, -(minTrendDays - 1)))
	prevKey := dayKey(dayStart(now).AddDate(0, 0, -(2*minTrendDays - 1)))

	results := make([]models.TrendResult, 0, 5)

	hydSeries := make(map[string]float64, len(hyd))
	for k, d := range hyd {
		hydSeries[k] = d.TotalML
	}
	if r, ok := weeklyTrend("hydration", "Hydration", hydSeries, prevKey, recentKey); ok {
		results = append(results, r)
	}

	woSeries := make(map[string]float64, len(wo))
	for k, d := range wo {
		woSeries[k] = d.DurationMin
	}
	if r, ok := weeklyTrend("workout_consistency", "Workout volume", woSeries, prevKey, recentKey); ok {
		results = append(results, r)
	}

	nutSeries := make(map[string]float64, len(nut))
	for k, d := range nut {
		nutSeries[k] = d.Calories
	}
	if r, ok := weeklyTrend("nutrition_adherence", "Calorie intake", nutSeries, prevKey, recentKey); ok {
		r.Insight += fmt.Sprintf(" Intake consistency score %.2f.", consistencyScore(nutSeries))
		results = append(results, r)
	} else if len(nutSeries) >= minTrendDays {
		// no meaningful previous-period comparison; consistency substitutes
		results = append(results, models.TrendResult{
			Metric:    "nutrition_adherence",
			Direction: models.TrendStable,
			Insight: fmt.Sprintf(
				"Not enough baseline for a week-over-week comparison; intake consistency score %.2f across the window.",
				consistencyScore(nutSeries)),
		})
	}

	bodySeries := make(map[string]float64, len(body))
	for k, d := range body {
		bodySeries[k] = d.WeightKG
	}
	if r, ok := weeklyTrend("body_composition", "Body weight", bodySeries, prevKey, recentKey); ok {
		results = append(results, r)
	}

	attachCorrelations(results, hyd, wo, nut)
	if r := recoveryPattern(results, wo); r != nil {
		results = append(results, *r)
	}
	return results, nil
}

// consistencyScore is max(0, 1 - CV) over the series values.
func consistencyScore(series map[string]float64) float64 {
	values := make([]float64, 0, len(series))
	for _, v := range series {
		values = append(values, v)
	}
	score := 1 - coefficientOfVariation(values)
	if score < 0 {
		score = 0
	}
	return round2(score)
}

// weeklyTrend splits the series into the most recent 7 days and the 7 before
// them, keyed by ISO date (lexicographic compare works for ISO dates).
// Returns ok=false when the domain has under 7 days of data or the baseline
// week mean is zero. Skipped, never a divide-by-zero.
func weeklyTrend(metric, label string, series map[string]float64, prevKey, recentKey string) (models.TrendResult, bool) {
	if len(series) < minTrendDays {
		return models.TrendResult{}, false
	}
	var recent, previous []float64
	for key, v := range series {
		switch {
		case key >= recentKey:
			recent = append(recent, v)
		case key >= prevKey:
			previous = append(previous, v)
		}
	}
	prevMean := mean(previous)
	if len(previous) == 0 || prevMean == 0 {
		return models.TrendResult{}, false // insufficient baseline
	}
	change := round2((mean(recent) - prevMean) / prevMean * 100)

	direction := models.TrendStable
	switch {
	case change > trendThresholdPct:
		direction = models.TrendImproving
	case change < -trendThresholdPct:
		direction = models.TrendDeclining
	}

	var insight string
	switch direction {
	case models.TrendImproving:
		insight = fmt.Sprintf("%s is up %.1f%% over the previous week.", label, change)
	case models.TrendDeclining:
		insight = fmt.Sprintf("%s is down %.1f%% from the previous week.", label, -change)
	default:
		insight = fmt.Sprintf("%s held steady (%+.1f%% vs the previous week).", label, change)
	}

	return models.TrendResult{
		Metric:        metric,
		Direction:     direction,
		ChangePercent: change,
		Insight:       insight,
	}, true
}
