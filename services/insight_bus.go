package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type insightDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _insight insightDeps

func InitInsightBus(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_insight = insightDeps{db: db, rt: rt, ps: ps}
}

// EmitInsightEvent persists the event and fans it out to connected websocket
// clients and registered push endpoints. Safe to call anywhere; a no-op until
// the bus is initialized, so tests run without wiring it.
func EmitInsightEvent(userID uint, kind, message string) {
	if _insight.db == nil {
		return
	}
	e := &models.InsightEvent{UserID: userID, Kind: kind, Message: message, CreatedAt: time.Now()}
	_ = _insight.db.Create(e).Error

	if _insight.rt != nil {
		_insight.rt.Broadcast(userID, map[string]any{
			"kind":  "insight." + kind,
			"event": e,
		})
	}
	if _insight.ps != nil && kind != "progress" { // progress is too chatty for push
		_insight.ps.PushToUser(userID, "Fitness update", message, map[string]string{
			"kind": kind, "eventId": fmt.Sprintf("%d", e.ID),
		})
	}
}
