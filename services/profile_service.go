package services

import (
	"context"
	"errors"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"gorm.io/gorm"
)

// ProfileService owns fitness-profile reads and writes for the hosting API.
// Schedule and override writes go through the repository so they land as one
// atomic UPDATE, so a reader never observes a half-updated schedule.
type ProfileService struct {
	db   *gorm.DB
	repo repository.MetricRepository
}

func NewProfileService(db *gorm.DB, repo repository.MetricRepository) *ProfileService {
	return &ProfileService{db: db, repo: repo}
}

type ProfileInput struct {
	Age              int     `json:"age"`
	Sex              string  `json:"sex"`
	HeightCM         float64 `json:"height_cm"`
	WeightKG         float64 `json:"weight_kg"`
	ActivityLevel    string  `json:"activity_level"`
	FitnessGoal      string  `json:"fitness_goal"`
	TargetWeightKG   float64 `json:"target_weight_kg"`
	DailyCalorieGoal float64 `json:"daily_calorie_goal"`
	DailyWaterGoalML float64 `json:"daily_water_goal_ml"`
}

func validGoal(goal string) bool {
	switch goal {
	case models.GoalLoseWeight, models.GoalMaintainWeight, models.GoalGainWeight, models.GoalBuildMuscle:
		return true
	}
	return false
}

// GetProfile returns the profile plus derived numbers the profile screen
// shows (BMI, BMR, TDEE). Returns (nil, nil) when no profile exists yet.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (map[string]any, error) {
	p, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	out := map[string]any{
		"age":                 p.Age,
		"sex":                 p.Sex,
		"height_cm":           p.HeightCM,
		"weight_kg":           p.WeightKG,
		"activity_level":      p.ActivityLevel,
		"fitness_goal":        p.FitnessGoal,
		"target_weight_kg":    p.TargetWeightKG,
		"daily_calorie_goal":  p.DailyCalorieGoal,
		"daily_water_goal_ml": p.DailyWaterGoalML,
		"weekly_override":     p.WeeklyOverride,
		"schedule":            p.Schedule,
	}
	if bmi, err := utils.CalculateBMI(p.HeightCM, p.WeightKG); err == nil {
		out["bmi"] = round2(bmi)
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	if bmr, err := utils.BMR(p.Sex, p.WeightKG, p.HeightCM, p.Age); err == nil {
		out["bmr"] = round2(bmr)
		out["tdee"] = round2(utils.TDEE(bmr, p.ActivityLevel))
	}
	return out, nil
}

// UpsertProfile creates the profile at onboarding or replaces its attribute
// fields afterwards. Schedule and overrides are untouched here.
func (s *ProfileService) UpsertProfile(userID uint, in ProfileInput) (*models.FitnessProfile, error) {
	if in.FitnessGoal != "" && !validGoal(in.FitnessGoal) {
		return nil, errors.New("invalid fitness goal")
	}
	if in.ActivityLevel != "" {
		if _, ok := utils.ActivityMultipliers[in.ActivityLevel]; !ok {
			return nil, errors.New("invalid activity level")
		}
	}

	var p models.FitnessProfile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p.UserID = userID
	p.Age = in.Age
	p.Sex = in.Sex
	p.HeightCM = in.HeightCM
	p.WeightKG = in.WeightKG
	p.ActivityLevel = in.ActivityLevel
	p.FitnessGoal = in.FitnessGoal
	p.TargetWeightKG = in.TargetWeightKG
	p.DailyCalorieGoal = in.DailyCalorieGoal
	p.DailyWaterGoalML = in.DailyWaterGoalML

	// keep the stored TDEE in step with the attributes it derives from
	if bmr, berr := utils.BMR(p.Sex, p.WeightKG, p.HeightCM, p.Age); berr == nil {
		p.TDEEKcal = round2(utils.TDEE(bmr, p.ActivityLevel))
	}

	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) SetSchedule(ctx context.Context, userID uint, schedule *models.GoalSchedule) error {
	return s.repo.UpdateProfile(ctx, userID, repository.ProfileUpdate{"schedule": schedule})
}

func (s *ProfileService) SetWeeklyOverride(ctx context.Context, userID uint, override *models.WeeklyGoalOverride) error {
	return s.repo.UpdateProfile(ctx, userID, repository.ProfileUpdate{"weekly_override": override})
}
