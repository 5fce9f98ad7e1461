package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/guest_safety_system/internal/models"
)

const (
	notificationQueueKey = "notification_events"
)

// Типы событий уведомлений
const (
	EventIncidentCreated  = "incident_created"
	EventIncidentAssigned = "incident_assigned"
	EventIncidentResolved = "incident_resolved"
	EventIncidentEscalated = "incident_escalated"
	EventDuplicateSuspect = "incident_duplicate_suspect"
	EventSensorAlarm      = "sensor_alarm"
	EventAccountCreated   = "account_created"
)

// Event - структура для данных уведомления
type Event struct {
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body,omitempty"`
	Severity  string           `json:"severity,omitempty"`
	Channels  []string         `json:"channels,omitempty"` // sms/email/push по флагам настроек
	Timestamp time.Time        `json:"timestamp"`
	Incident  *models.Incident `json:"incident,omitempty"`
}

// Publisher - интерфейс для публикации уведомлений
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие уведомления в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
