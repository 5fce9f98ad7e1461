package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы отметки гостя при эвакуации
const (
	CheckInStatusUnaccounted = "unaccounted"
	CheckInStatusSafe        = "safe"
	CheckInStatusInProgress  = "in_progress"
)

// EvacuationCheckIn - запись об отметке одного гостя при эвакуации
type EvacuationCheckIn struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guest_name"`
	Room      string    `json:"room"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// EvacuationHeadcount - агрегированные счётчики по отметкам гостей
type EvacuationHeadcount struct {
	Total       int `json:"total"`
	Safe        int `json:"safe"`
	Unaccounted int `json:"unaccounted"`
	InProgress  int `json:"in_progress"`
}
