package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы гостевых сообщений
const (
	MessageTypeRequest   = "request"
	MessageTypeUpdate    = "update"
	MessageTypeQuestion  = "question"
	MessageTypeEmergency = "emergency"
)

// Направления сообщений
const (
	DirectionInbound  = "inbound"  // гость -> персонал
	DirectionOutbound = "outbound" // персонал -> гость
)

// GuestMessage представляет сообщение между гостем и персоналом
type GuestMessage struct {
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
