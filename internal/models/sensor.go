package models

import (
	"time"

	"github.com/google/uuid"
)

// Виды датчиков на объекте
const (
	SensorKindSmoke  = "smoke"
	SensorKindDoor   = "door"
	SensorKindMotion = "motion"
	SensorKindPanic  = "panic"
)

// Статусы датчика
const (
	SensorStatusOnline  = "online"
	SensorStatusOffline = "offline"
	SensorStatusAlarm   = "alarm"
)

// Sensor представляет IoT-датчик, привязанный к объекту размещения
type Sensor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Battery   int       `json:"battery"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SensorAlert - тревога, зафиксированная датчиком
type SensorAlert struct {
	ID           uuid.UUID `json:"id"`
	SensorID     uuid.UUID `json:"sensor_id"`
	Level        string    `json:"level"`
	Message      string    `json:"message"`
	Acknowledged bool      `json:"acknowledged"`
	CreatedAt    time.Time `json:"created_at"`
}

// SensorReading - показание датчика, принятое от устройства
type SensorReading struct {
	SensorID  uuid.UUID `json:"sensor_id"`
	Status    string    `json:"status"`
	Battery   int       `json:"battery"`
	Value     float64   `json:"value,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
