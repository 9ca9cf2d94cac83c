package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMR(t *testing.T) {
	male, err := BMR("male", 70, 175, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1648.75, male, 0.001)

	female, err := BMR("female", 70, 175, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1482.75, female, 0.001)
}

func TestBMRRejectsNonPositiveInputs(t *testing.T) {
	_, err := BMR("male", 0, 175, 30)
	assert.Error(t, err)

	_, err = BMR("male", 70, -1, 30)
	assert.Error(t, err)

	_, err = BMR("male", 70, 175, 0)
	assert.Error(t, err)
}

func TestTDEE(t *testing.T) {
	assert.InDelta(t, 2555.5625, TDEE(1648.75, "moderately_active"), 0.001)
	assert.InDelta(t, 1978.5, TDEE(1648.75, "sedentary"), 0.001)

	// unknown levels fall back to sedentary
	assert.InDelta(t, 1978.5, TDEE(1648.75, "olympic"), 0.001)
}

func TestDailyCalorieTarget(t *testing.T) {
	assert.InDelta(t, 2055.5625, DailyCalorieTarget("lose_weight", 2555.5625), 0.001)
	assert.InDelta(t, 2855.5625, DailyCalorieTarget("gain_weight", 2555.5625), 0.001)
	assert.InDelta(t, 2855.5625, DailyCalorieTarget("build_muscle", 2555.5625), 0.001)
	assert.InDelta(t, 2555.5625, DailyCalorieTarget("maintain_weight", 2555.5625), 0.001)
}

func TestDailyCalorieTargetDeficitFloor(t *testing.T) {
	// a 500 kcal deficit never drops the target below 1200
	assert.InDelta(t, 1200, DailyCalorieTarget("lose_weight", 1500), 0.001)
}
