package services

import (
	"fmt"

	"backend/models"
)

// Heuristic co-movement checks. These are acknowledged pattern matches, not
// statistical correlations; each one appends at most one sentence to the
// owning domain's TrendResult and never makes a standalone numeric claim.
const (
	minCorrelationDays  = 14
	correlationLiftPct  = 10.0
	minRecoverySessions = 5
)

// attachCorrelations decorates existing results in place. A note only lands
// on a domain that already produced its own trend.
func attachCorrelations(results []models.TrendResult, hyd map[string]models.HydrationDay, wo map[string]models.WorkoutDay, nut map[string]models.NutritionDay) {
	if note := workoutDayLiftNote("hydration", hydrationSeries(hyd), wo); note != "" {
		appendNote(results, "hydration", note)
	}
	if note := workoutDayLiftNote("protein intake", proteinSeries(nut), wo); note != "" {
		appendNote(results, "workout_consistency", note)
	}
}

func hydrationSeries(hyd map[string]models.HydrationDay) map[string]float64 {
	out := make(map[string]float64, len(hyd))
	for k, d := range hyd {
		out[k] = d.TotalML
	}
	return out
}

func proteinSeries(nut map[string]models.NutritionDay) map[string]float64 {
	out := make(map[string]float64, len(nut))
	for k, d := range nut {
		out[k] = d.ProteinG
	}
	return out
}

// workoutDayLiftNote compares the series mean on workout days against its
// overall mean. Requires 14 days of overlap on both sides; fires only when
// workout days run more than 10% above the overall mean.
func workoutDayLiftNote(label string, series map[string]float64, wo map[string]models.WorkoutDay) string {
	if len(series) < minCorrelationDays || len(wo) < minCorrelationDays {
		return ""
	}
	var all, onWorkoutDays []float64
	for key, v := range series {
		all = append(all, v)
		if _, ok := wo[key]; ok {
			onWorkoutDays = append(onWorkoutDays, v)
		}
	}
	overall := mean(all)
	if overall == 0 || len(onWorkoutDays) == 0 {
		return ""
	}
	lift := (mean(onWorkoutDays) - overall) / overall * 100
	if lift <= correlationLiftPct {
		return ""
	}
	return fmt.Sprintf("Your %s tends to run higher on workout days.", label)
}

func appendNote(results []models.TrendResult, metric, note string) {
	for i := range results {
		if results[i].Metric == metric {
			results[i].Correlation = note
			results[i].Insight += " " + note
			return
		}
	}
}

// recoveryPattern emits a trailing, explicitly weak heuristic entry when
// hydration is trending up alongside a real training load. No numbers are
// claimed; it rides on the hydration domain's own trend.
func recoveryPattern(results []models.TrendResult, wo map[string]models.WorkoutDay) *models.TrendResult {
	var hydrationImproving bool
	for _, r := range results {
		if r.Metric == "hydration" && r.Direction == models.TrendImproving {
			hydrationImproving = true
		}
	}
	if !hydrationImproving {
		return nil
	}
	sessions := 0
	for _, d := range wo {
		sessions += d.Sessions
	}
	if sessions < minRecoverySessions {
		return nil
	}
	return &models.TrendResult{
		Metric:    "recovery_pattern",
		Direction: models.TrendStable,
		Insight:   "Rising hydration alongside regular training suggests a good recovery pattern (a weak heuristic, not a validated correlation).",
	}
}
