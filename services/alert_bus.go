package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAdviceAlerts persists and broadcasts the high-severity findings
// of a processed meal. Safe to call anywhere; a no-op before init.
func EmitAdviceAlerts(userID uint, suggestions []Suggestion) {
	if _alert.db == nil {
		return
	}
	for _, sg := range suggestions {
		if sg.Severity != High && sg.Severity != Caution {
			continue
		}
		typ := "info"
		if sg.Severity == High {
			typ = "warning"
		}
		a := &models.Alert{
			UserID:    userID,
			Code:      sg.Code,
			Type:      typ,
			Message:   sg.Message,
			CreatedAt: time.Now(),
		}
		_ = _alert.db.Create(a).Error

		if _alert.rt != nil {
			_alert.rt.BroadcastAlert(userID, map[string]any{
				"kind":  "alert.created",
				"alert": a,
			})
		}
	}
}
