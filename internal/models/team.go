package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы группы реагирования
const (
	TeamStatusAvailable  = "available"
	TeamStatusResponding = "responding"
	TeamStatusOffline    = "offline"
)

// ResponseTeam представляет группу реагирования на объекте
type ResponseTeam struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
