package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы инцидента. Переходы только вперёд: reported -> responding -> resolved.
const (
	IncidentStatusReported   = "reported"
	IncidentStatusResponding = "responding"
	IncidentStatusResolved   = "resolved"
)

// Уровни серьёзности инцидента
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Источники создания инцидента
const (
	SourceManager        = "manager"
	SourceMobileAgent    = "mobile_agent"
	SourceHardwareDevice = "hardware_device"
	SourcePanicButton    = "panic_button"
	SourceAuto           = "auto"
)

// Типы инцидента, выводятся по ключевым словам из заголовка и описания
const (
	IncidentTypeMedical    = "medical"
	IncidentTypeFire       = "fire"
	IncidentTypeSecurity   = "security"
	IncidentTypeEvacuation = "evacuation"
	IncidentTypeNoise      = "noise"
	IncidentTypeOther      = "other"
)

type Incident struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	Room           string     `json:"room,omitempty"`
	Type           string     `json:"type"`
	Severity       string     `json:"severity"`
	Status         string     `json:"status"`
	ReportedAt     time.Time  `json:"reported_at"`
	AssignedTeamID *uuid.UUID `json:"assigned_team_id,omitempty"`
	GuestName      string     `json:"guest_name,omitempty"`
	GuestRoom      string     `json:"guest_room,omitempty"`
	Source         string     `json:"source"`
	// Метаданные источника: кто или что создало инцидент
	AgentTrustScore *float64  `json:"agent_trust_score,omitempty"`
	DeviceID        string    `json:"device_id,omitempty"`
	Escalated       bool      `json:"escalated"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IncidentFilter задает параметры выборки списка инцидентов
type IncidentFilter struct {
	Status   string
	Severity string
	Type     string
}
