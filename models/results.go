package models

// Trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// TrendResult is one analyzable domain's week-over-week movement.
type TrendResult struct {
	Metric        string  `json:"metric"`
	Direction     string  `json:"direction"`
	ChangePercent float64 `json:"change_percent"`
	Correlation   string  `json:"correlation,omitempty"`
	Insight       string  `json:"insight"`
}

// PredictiveInsight is one projection with its confidence in [0,1].
type PredictiveInsight struct {
	Prediction      string   `json:"prediction"`
	Confidence      float64  `json:"confidence"`
	Timeframe       string   `json:"timeframe"`
	Recommendations []string `json:"recommendations"`
}

type MacroRatios struct {
	ProteinPct int `json:"protein_pct"`
	CarbsPct   int `json:"carbs_pct"`
	FatPct     int `json:"fat_pct"`
}

// MacroPlan is the optimizer output: gram targets against the day's calories.
type MacroPlan struct {
	Calories  float64     `json:"calories"`
	ProteinG  int         `json:"protein_g"`
	CarbsG    int         `json:"carbs_g"`
	FatG      int         `json:"fat_g"`
	Ratios    MacroRatios `json:"ratios"`
	Reasoning string      `json:"reasoning"`
}

// EnergyBalance is intake minus (TDEE + workout burn) for one date.
type EnergyBalance struct {
	Date       string  `json:"date"`
	IntakeKcal float64 `json:"intake_kcal"`
	BurnedKcal float64 `json:"burned_kcal"`
	TDEE       float64 `json:"tdee"`
	Balance    float64 `json:"balance"`
}
