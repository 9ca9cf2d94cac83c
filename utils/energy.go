package utils

import "errors"

// Calorie densities per macro gram.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
)

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extra_active":      1.9,
}

// BMR computes resting calorie burn via Mifflin-St Jeor.
// Expects height in centimeters and weight in kilograms.
func BMR(sex string, weightKG, heightCM float64, age int) (float64, error) {
	if weightKG <= 0 || heightCM <= 0 || age <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// TDEE scales BMR by the activity multiplier. Unknown levels fall back to
// sedentary rather than erroring; a conservative estimate beats none.
func TDEE(bmr float64, activityLevel string) float64 {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

// DailyCalorieTarget derives a calorie goal from TDEE and the fitness goal:
// a 500 kcal deficit for weight loss, a 300 kcal surplus for gaining.
func DailyCalorieTarget(fitnessGoal string, tdee float64) float64 {
	switch fitnessGoal {
	case "lose_weight":
		target := tdee - 500
		if target < 1200 {
			target = 1200
		}
		return target
	case "gain_weight", "build_muscle":
		return tdee + 300
	default:
		return tdee
	}
}
