package models

import "time"

// Стратегии назначения групп реагирования
const (
	AssignmentAutomatic  = "automatic"
	AssignmentManual     = "manual"
	AssignmentRoundRobin = "round_robin"
)

// GuestSafetySettings - единственный объект настроек на объект размещения.
// Сохраняется целиком при каждом обновлении.
type GuestSafetySettings struct {
	AlertThresholdMinutes int       `json:"alert_threshold_minutes"`
	AutoEscalation        bool      `json:"auto_escalation"`
	NotifySMS             bool      `json:"notify_sms"`
	NotifyEmail           bool      `json:"notify_email"`
	NotifyPush            bool      `json:"notify_push"`
	TeamAssignment        string    `json:"team_assignment"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultSettings возвращает настройки по умолчанию, если запись ещё не создана
func DefaultSettings() *GuestSafetySettings {
	return &GuestSafetySettings{
		AlertThresholdMinutes: 15,
		AutoEscalation:        true,
		NotifyPush:            true,
		TeamAssignment:        AssignmentManual,
	}
}
