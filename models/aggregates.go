package models

// Per-day tagged aggregates, built once by the aggregator and consumed
// read-only by every analyzer. Keys are ISO dates (YYYY-MM-DD); missing days
// are simply absent, never zero-filled.

type HydrationDay struct {
	Date    string  `json:"date"`
	TotalML float64 `json:"total_ml"`
	Entries int     `json:"entries"`
}

type WorkoutDay struct {
	Date           string  `json:"date"`
	Sessions       int     `json:"sessions"`
	DurationMin    float64 `json:"duration_min"`
	CaloriesBurned float64 `json:"calories_burned"`
	AvgExertion    float64 `json:"avg_exertion"` // over sessions that reported it
}

type NutritionDay struct {
	Date     string  `json:"date"`
	Meals    int     `json:"meals"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type BodyDay struct {
	Date       string  `json:"date"`
	WeightKG   float64 `json:"weight_kg"`    // averaged over same-day readings
	BodyFatPct float64 `json:"body_fat_pct"` // 0 when not measured
}
