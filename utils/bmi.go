package utils

import "errors"

// CalculateBMI returns weight over squared height, with height taken in
// centimeters. Inputs outside a plausible human range are rejected rather
// than producing an absurd index.
func CalculateBMI(heightCM, weightKG float64) (float64, error) {
	if heightCM <= 0 || weightKG <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCM < 50 || heightCM > 250 || weightKG < 10 || weightKG > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}
	m := heightCM / 100
	return weightKG / (m * m), nil
}

// BMICategory labels a BMI value per the WHO adult bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
