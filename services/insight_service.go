package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"golang.org/x/sync/errgroup"
)

const (
	minWeightRecords      = 5
	highConfidenceRecords = 20
	minExertionSessions   = 5
	outlookWindowDays     = 30
)

// InsightService projects weight, workout capacity and goal adherence from
// recent history. Each predictor is independent and emits nothing when its
// prerequisite data is absent.
type InsightService struct {
	repo repository.MetricRepository
	agg  *AggregateService
}

func NewInsightService(repo repository.MetricRepository) *InsightService {
	return &InsightService{repo: repo, agg: NewAggregateService(repo)}
}

func (s *InsightService) GenerateInsights(ctx context.Context, userID uint) ([]models.PredictiveInsight, error) {
	now := time.Now()

	var (
		profile  *models.FitnessProfile
		body     []models.BodyMetric
		workouts []models.WorkoutSession
		nut      map[string]models.NutritionDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { profile, err = s.repo.Profile(gctx, userID); return })
	g.Go(func() (err error) { body, err = s.repo.BodyMetrics(gctx, userID, now.AddDate(0, 0, -90), now); return })
	g.Go(func() (err error) { workouts, err = s.repo.Workouts(gctx, userID, now.AddDate(0, 0, -30), now); return })
	g.Go(func() (err error) {
		nut, err = s.agg.NutritionByDay(gctx, userID, now.AddDate(0, 0, -(outlookWindowDays-1)), now)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	insights := make([]models.PredictiveInsight, 0, 3)
	if in := weightTrajectory(profile, body); in != nil {
		insights = append(insights, *in)
	}
	if in := performanceTrajectory(workouts); in != nil {
		insights = append(insights, *in)
	}
	if in := goalOutlook(profile, nut); in != nil {
		insights = append(insights, *in)
	}
	return insights, nil
}

// weightTrajectory projects weeks-to-goal from the average day-over-day
// weight delta. Needs at least 5 records and a target weight on the profile.
func weightTrajectory(p *models.FitnessProfile, records []models.BodyMetric) *models.PredictiveInsight {
	if p == nil || p.TargetWeightKG <= 0 || len(records) < minWeightRecords {
		return nil
	}
	first, last := records[0], records[len(records)-1]
	spanDays := last.Date.Sub(first.Date).Hours() / 24

	confidence := 0.6
	if len(records) >= highConfidenceRecords {
		confidence = 0.8
	}

	var deltaPerDay float64
	if spanDays > 0 {
		deltaPerDay = (last.WeightKG - first.WeightKG) / spanDays
	}
	if deltaPerDay == 0 {
		return &models.PredictiveInsight{
			Prediction: "Your weight has been flat recently; not enough movement to project a date for your target.",
			Confidence: confidence,
			Timeframe:  "current trajectory",
			Recommendations: filterRecs([]string{
				"Keep logging weight; a trend needs a few weeks of movement to show.",
			}),
		}
	}

	toGo := p.TargetWeightKG - last.WeightKG
	movingToward := (toGo > 0) == (deltaPerDay > 0)
	if !movingToward {
		return &models.PredictiveInsight{
			Prediction: fmt.Sprintf(
				"You're currently trending away from your target weight of %.1f kg.", p.TargetWeightKG),
			Confidence: confidence,
			Timeframe:  "current trajectory",
			Recommendations: filterRecs([]string{
				"Revisit your calorie goal; the current balance is moving you the wrong way.",
				conditionalRec(p.FitnessGoal == models.GoalLoseWeight,
					"A modest 300-500 kcal daily deficit is a sustainable pace."),
			}),
		}
	}

	weeks := math.Abs(toGo) / (math.Abs(deltaPerDay) * 7)
	return &models.PredictiveInsight{
		Prediction: fmt.Sprintf(
			"At your current rate you'll reach %.1f kg in about %.0f weeks.", p.TargetWeightKG, weeks),
		Confidence: confidence,
		Timeframe:  fmt.Sprintf("~%.0f weeks", weeks),
		Recommendations: filterRecs([]string{
			"Stay on your current plan; the trend is pointed at your target.",
			conditionalRec(weeks > 26, "That's a long horizon; consider adjusting your calorie goal to speed things up safely."),
		}),
	}
}

// performanceTrajectory compares the mean exertion of the 5 most recent
// sessions against the 5 oldest in the window.
func performanceTrajectory(workouts []models.WorkoutSession) *models.PredictiveInsight {
	var rated []models.WorkoutSession
	for _, w := range workouts {
		if w.PerceivedExertion > 0 {
			rated = append(rated, w)
		}
	}
	if len(rated) < minExertionSessions {
		return nil
	}

	oldest := make([]float64, 0, minExertionSessions)
	for _, w := range rated[:minExertionSessions] {
		oldest = append(oldest, w.PerceivedExertion)
	}
	recent := make([]float64, 0, minExertionSessions)
	for _, w := range rated[len(rated)-minExertionSessions:] {
		recent = append(recent, w.PerceivedExertion)
	}

	oldMean, newMean := mean(oldest), mean(recent)
	increasing := oldMean > 0 && (newMean-oldMean)/oldMean > 0.10

	if increasing {
		return &models.PredictiveInsight{
			Prediction: "Your workout capacity is increasing; sessions are landing at a higher intensity than earlier in the month.",
			Confidence: 0.75,
			Timeframe:  "next 2-4 weeks",
			Recommendations: filterRecs([]string{
				"Consider progressive overload: small weekly increases in load or duration.",
			}),
		}
	}
	return &models.PredictiveInsight{
		Prediction: "Your training intensity is holding steady.",
		Confidence: 0.75,
		Timeframe:  "next 2-4 weeks",
		Recommendations: filterRecs([]string{
			"Maintain current intensity to avoid overtraining.",
		}),
	}
}

// goalOutlook scores 30-day nutrition-logging adherence against the calorie
// goal. Confidence is the adherence rate itself.
func goalOutlook(p *models.FitnessProfile, nut map[string]models.NutritionDay) *models.PredictiveInsight {
	if p == nil || p.FitnessGoal == "" {
		return nil
	}
	if p.TargetWeightKG <= 0 && p.DailyCalorieGoal <= 0 {
		return nil
	}

	adherence := float64(len(nut)) / float64(outlookWindowDays)
	if adherence > 1 {
		adherence = 1
	}

	goal := p.DailyCalorieGoal
	if goal <= 0 {
		goal = derivedCalorieGoal(p)
	}

	var meanCalories float64
	if len(nut) > 0 {
		var total float64
		for _, d := range nut {
			total += d.Calories
		}
		meanCalories = total / float64(len(nut))
	}

	var onTrack bool
	switch p.FitnessGoal {
	case models.GoalLoseWeight:
		onTrack = meanCalories > 0 && meanCalories <= goal
	case models.GoalGainWeight, models.GoalBuildMuscle:
		onTrack = meanCalories >= goal
	default:
		onTrack = goal > 0 && math.Abs(meanCalories-goal) <= goal*0.10
	}

	prediction := fmt.Sprintf(
		"Your average intake over the last %d days is off pace for your %s goal.", outlookWindowDays, p.FitnessGoal)
	if onTrack {
		prediction = fmt.Sprintf(
			"You're on track for your %s goal based on the last %d days of logging.", p.FitnessGoal, outlookWindowDays)
	}

	return &models.PredictiveInsight{
		Prediction: prediction,
		Confidence: round2(adherence),
		Timeframe:  fmt.Sprintf("next %d days", outlookWindowDays),
		Recommendations: filterRecs([]string{
			conditionalRec(adherence < 0.5, "Log meals more consistently; projections sharpen with more data."),
			conditionalRec(!onTrack, "Nudge your daily intake toward your calorie goal."),
		}),
	}
}

// derivedCalorieGoal falls back to the energy model when the profile carries
// no explicit calorie goal.
func derivedCalorieGoal(p *models.FitnessProfile) float64 {
	bmr, err := utils.BMR(p.Sex, p.WeightKG, p.HeightCM, p.Age)
	if err != nil {
		return defaultCalories
	}
	return utils.DailyCalorieTarget(p.FitnessGoal, utils.TDEE(bmr, p.ActivityLevel))
}

func conditionalRec(cond bool, rec string) string {
	if !cond {
		return ""
	}
	return rec
}

// filterRecs drops conditional recommendations that did not apply.
func filterRecs(recs []string) []string {
	out := recs[:0]
	for _, r := range recs {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
