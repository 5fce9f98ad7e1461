package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Типы событий, рассылаемых по WebSocket-каналу персонала
const (
	EventIncident       = "guest_safety_incident"
	EventIncidentUpdate = "guest_safety_incident_update"
	EventDeviceStatus   = "hardware_device_status"
	EventGuestMessage   = "guest_message"
)

// Event - конверт события для WebSocket-рассылки
type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// Hub управляет всеми WebSocket-подключениями и рассылает события.
// Все изменения карты подключений идут через каналы в единственной горутине Run
type Hub struct {
	clients    map[uuid.UUID]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	logger     *logrus.Logger
}

// NewHub создает новый Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
		logger:     logger,
	}
}

// Run запускает цикл обработки подключений. Останавливается отменой контекста
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("Starting realtime hub...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				h.logger.Info("Stopping realtime hub.")
				for _, client := range h.clients {
					close(client.send)
				}
				return
			case client := <-h.register:
				h.clients[client.id] = client
				h.logger.WithField("client_id", client.id).Info("WebSocket client connected")
			case client := <-h.unregister:
				if _, ok := h.clients[client.id]; ok {
					delete(h.clients, client.id)
					close(client.send)
					h.logger.WithField("client_id", client.id).Info("WebSocket client disconnected")
				}
			case event := <-h.broadcast:
				payload, err := json.Marshal(event)
				if err != nil {
					h.logger.WithError(err).Error("Failed to marshal realtime event")
					continue
				}
				for id, client := range h.clients {
					select {
					case client.send <- payload:
					default:
						// Клиент не успевает читать - отключаем, чтобы не копить бэклог
						delete(h.clients, id)
						close(client.send)
						h.logger.WithField("client_id", id).Warn("WebSocket client too slow, dropping")
					}
				}
			}
		}
	}()
}

// Broadcast ставит событие в очередь рассылки, не блокируя вызывающего
func (h *Hub) Broadcast(eventType string, data any) {
	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	select {
	case h.broadcast <- event:
	default:
		h.logger.WithField("event_type", eventType).Warn("Realtime broadcast queue is full, dropping event")
	}
}

// IncidentCreated реализует service.EventBroadcaster
func (h *Hub) IncidentCreated(incident *models.Incident) {
	h.Broadcast(EventIncident, incident)
}

// IncidentUpdated реализует service.EventBroadcaster
func (h *Hub) IncidentUpdated(incident *models.Incident) {
	h.Broadcast(EventIncidentUpdate, incident)
}

// DeviceStatus реализует service.EventBroadcaster
func (h *Hub) DeviceStatus(sensor *models.Sensor) {
	h.Broadcast(EventDeviceStatus, sensor)
}

// GuestMessage реализует service.EventBroadcaster
func (h *Hub) GuestMessage(message *models.GuestMessage) {
	h.Broadcast(EventGuestMessage, message)
}
