package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=255"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location" validate:"required,max=255"`
	Room            string   `json:"room,omitempty" validate:"omitempty,max=64"`
	Severity        string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	GuestName       string   `json:"guest_name,omitempty" validate:"omitempty,max=255"`
	GuestRoom       string   `json:"guest_room,omitempty" validate:"omitempty,max=64"`
	Source          string   `json:"source,omitempty" validate:"omitempty,oneof=manager mobile_agent hardware_device panic_button auto"`
	AgentTrustScore *float64 `json:"agent_trust_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	DeviceID        string   `json:"device_id,omitempty" validate:"omitempty,max=128"`
}

// UpdateIncidentRequest DTO для обновления описательных полей инцидента.
// Статус через этот запрос не меняется
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty" validate:"omitempty,max=255"`
	Room        string `json:"room,omitempty" validate:"omitempty,max=64"`
	Severity    string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
}

// PushIncidentRequest DTO для инцидента, присланного устройством или мобильным агентом
// @Description DTO для push-инцидента от устройства или агента
type PushIncidentRequest struct {
	ID              uuid.UUID `json:"id" validate:"required"`
	Title           string    `json:"title" validate:"required,min=2,max=255"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location" validate:"required,max=255"`
	Room            string    `json:"room,omitempty" validate:"omitempty,max=64"`
	Severity        string    `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status          string    `json:"status,omitempty" validate:"omitempty,oneof=reported responding resolved"`
	ReportedAt      time.Time `json:"reported_at" validate:"required"`
	Source          string    `json:"source" validate:"required,oneof=mobile_agent hardware_device panic_button"`
	AgentTrustScore *float64  `json:"agent_trust_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	DeviceID        string    `json:"device_id,omitempty" validate:"omitempty,max=128"`
}

// AssignTeamRequest DTO для назначения группы реагирования
// @Description DTO для назначения группы реагирования
type AssignTeamRequest struct {
	TeamID uuid.UUID `json:"team_id" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Location        string     `json:"location"`
	Room            string     `json:"room,omitempty"`
	Type            string     `json:"type"`
	Severity        string     `json:"severity"`
	Status          string     `json:"status"`
	ReportedAt      time.Time  `json:"reported_at"`
	AssignedTeamID  *uuid.UUID `json:"assigned_team_id,omitempty"`
	GuestName       string     `json:"guest_name,omitempty"`
	GuestRoom       string     `json:"guest_room,omitempty"`
	Source          string     `json:"source"`
	AgentTrustScore *float64   `json:"agent_trust_score,omitempty"`
	DeviceID        string     `json:"device_id,omitempty"`
	Escalated       bool       `json:"escalated"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TeamResponse DTO для ответа с информацией о группе реагирования
// @Description DTO для ответа с информацией о группе реагирования
type TeamResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	Status string    `json:"status"`
}

// CreateMessageRequest DTO для создания гостевого сообщения
// @Description DTO для создания гостевого сообщения
type CreateMessageRequest struct {
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	GuestName  string     `json:"guest_name" validate:"required,max=255"`
	GuestRoom  string     `json:"guest_room,omitempty" validate:"omitempty,max=64"`
	Text       string     `json:"text" validate:"required,max=2000"`
	Type       string     `json:"type,omitempty" validate:"omitempty,oneof=request update question emergency"`
	Direction  string     `json:"direction,omitempty" validate:"omitempty,oneof=inbound outbound"`
	Channel    string     `json:"channel,omitempty" validate:"omitempty,max=32"`
}

// MessageResponse DTO для ответа с гостевым сообщением
// @Description DTO для ответа с гостевым сообщением
type MessageResponse struct {
	ID         uuid.UUID  `json:"id"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	GuestName  string     `json:"guest_name"`
	GuestRoom  string     `json:"guest_room,omitempty"`
	Text       string     `json:"text"`
	Type       string     `json:"type"`
	Direction  string     `json:"direction"`
	Channel    string     `json:"channel,omitempty"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UpdateCheckInRequest DTO для смены статуса отметки гостя при эвакуации
// @Description DTO для смены статуса отметки гостя
type UpdateCheckInRequest struct {
	Status string `json:"status" validate:"required,oneof=unaccounted safe in_progress"`
}

// SettingsRequest DTO для сохранения настроек объекта
// @Description DTO для сохранения настроек объекта
type SettingsRequest struct {
	AlertThresholdMinutes int    `json:"alert_threshold_minutes" validate:"required,gt=0,lte=1440"`
	AutoEscalation        bool   `json:"auto_escalation"`
	NotifySMS             bool   `json:"notify_sms"`
	NotifyEmail           bool   `json:"notify_email"`
	NotifyPush            bool   `json:"notify_push"`
	TeamAssignment        string `json:"team_assignment" validate:"required,oneof=manual automatic round_robin"`
}

// CreateSensorRequest DTO для регистрации датчика
// @Description DTO для регистрации датчика
type CreateSensorRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Kind     string `json:"kind" validate:"required,oneof=smoke door motion panic"`
	Location string `json:"location" validate:"required,max=255"`
	Battery  int    `json:"battery" validate:"gte=0,lte=100"`
}

// UpdateSensorRequest DTO для обновления датчика
// @Description DTO для обновления датчика
type UpdateSensorRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Location string `json:"location,omitempty" validate:"omitempty,max=255"`
	Battery  *int   `json:"battery,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// SensorReadingRequest DTO для показания, присланного датчиком
// @Description DTO для показания датчика
type SensorReadingRequest struct {
	Status    string    `json:"status" validate:"required,oneof=online offline alarm"`
	Battery   int       `json:"battery" validate:"gte=0,lte=100"`
	Value     float64   `json:"value,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// CreateAccountRequest DTO для создания учётной записи сотрудника
// @Description DTO для создания учётной записи сотрудника
type CreateAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=manager agent viewer"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateAccountRequest DTO для обновления учётной записи сотрудника
// @Description DTO для обновления учётной записи сотрудника
type UpdateAccountRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Role string `json:"role,omitempty" validate:"omitempty,oneof=manager agent viewer"`
}

// LoginRequest DTO для входа сотрудника
// @Description DTO для входа сотрудника
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с JWT и данными сотрудника
// @Description DTO с JWT и данными сотрудника
type LoginResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account"`
}

// AccountResponse DTO для ответа с учётной записью (без хеша пароля)
// @Description DTO для ответа с учётной записью
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
