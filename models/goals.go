package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DailyGoals is the resolved (or partially overridden) target set for one day.
// Zero fields are omitted from JSON so weekday overrides can stay partial.
type DailyGoals struct {
	Calories float64 `json:"calories,omitempty"`
	ProteinG float64 `json:"protein_g,omitempty"`
	CarbsG   float64 `json:"carbs_g,omitempty"`
	FatG     float64 `json:"fat_g,omitempty"`
	WaterML  float64 `json:"water_ml,omitempty"`
	Steps    int     `json:"steps,omitempty"`
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", name)
	}
	return d, nil
}

func weekdayName(d time.Weekday) string { return strings.ToLower(d.String()) }

// WeekdaySet is a bitmask over the 7 weekdays. It marshals as a JSON array of
// lowercase weekday names, so stored schedules cannot hold invalid keys.
type WeekdaySet uint8

func (s WeekdaySet) Has(d time.Weekday) bool { return s&(1<<uint(d)) != 0 }

func (s *WeekdaySet) Add(d time.Weekday) { *s |= 1 << uint(d) }

func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, weekdayName(d))
	}
	return json.Marshal(names)
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var set WeekdaySet
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return err
		}
		set.Add(d)
	}
	*s = set
	return nil
}

// GoalSchedule tags weekdays with scheduling rules. Rules are additive
// multipliers applied to profile defaults, in the fixed order
// workout -> high-protein -> refeed.
type GoalSchedule struct {
	WorkoutDays     WeekdaySet `json:"workout_days,omitempty"`
	RestDays        WeekdaySet `json:"rest_days,omitempty"`
	HighProteinDays WeekdaySet `json:"high_protein_days,omitempty"`
	RefeedDays      WeekdaySet `json:"refeed_days,omitempty"`
}

// WeeklyGoalOverride maps each weekday to an optional partial DailyGoals.
// A non-nil entry is the highest-precedence goal source for that weekday and is
// returned verbatim, with no merging against schedule rules or defaults.
type WeeklyGoalOverride [7]*DailyGoals

func (o *WeeklyGoalOverride) For(d time.Weekday) *DailyGoals {
	if o == nil {
		return nil
	}
	return o[d]
}

func (o *WeeklyGoalOverride) Set(d time.Weekday, goals *DailyGoals) { o[d] = goals }

func (o WeeklyGoalOverride) MarshalJSON() ([]byte, error) {
	out := make(map[string]*DailyGoals, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if o[d] != nil {
			out[weekdayName(d)] = o[d]
		}
	}
	return json.Marshal(out)
}

func (o *WeeklyGoalOverride) UnmarshalJSON(data []byte) error {
	var in map[string]*DailyGoals
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	var parsed WeeklyGoalOverride
	for name, goals := range in {
		d, err := ParseWeekday(name)
		if err != nil {
			return err
		}
		parsed[d] = goals // explicit null clears the day
	}
	*o = parsed
	return nil
}
