package models

import "time"

// InsightEvent is a persisted engine notification (goal reached, schedule
// applied, progress update) fanned out over websocket and push.
type InsightEvent struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Kind      string    `gorm:"size:32"` // "progress" | "schedule" | "goal"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
