package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
)

// SensorRepository определяет контракт для работы с бд датчиков
type SensorRepository interface {
	Create(ctx context.Context, sensor *models.Sensor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sensor, error)
	Update(ctx context.Context, sensor *models.Sensor) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*models.Sensor, error)
	CreateAlert(ctx context.Context, alert *models.SensorAlert) error
	ListAlerts(ctx context.Context, unackedOnly bool) ([]*models.SensorAlert, error)
	AcknowledgeAlert(ctx context.Context, id uuid.UUID) (bool, error)
}

// SensorService определяет контракт для мониторинга IoT-датчиков
type SensorService interface {
	CreateSensor(ctx context.Context, sensor *models.Sensor) error
	GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error)
	UpdateSensor(ctx context.Context, sensor *models.Sensor) error
	DeleteSensor(ctx context.Context, id uuid.UUID) error
	ListSensors(ctx context.Context) ([]*models.Sensor, error)
	ListAlerts(ctx context.Context, unackedOnly bool) ([]*models.SensorAlert, error)
	AcknowledgeAlert(ctx context.Context, id uuid.UUID) error
	IngestReading(ctx context.Context, reading *models.SensorReading) error
}

type sensorService struct {
	repo        SensorRepository
	incidents   IncidentService
	logger      *logrus.Logger
	notifier    notification.Publisher
	broadcaster EventBroadcaster
}

func NewSensorService(
	repo SensorRepository,
	incidents IncidentService,
	logger *logrus.Logger,
	notifier notification.Publisher,
	broadcaster EventBroadcaster,
) SensorService {
	return &sensorService{
		repo:        repo,
		incidents:   incidents,
		logger:      logger,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

// CreateSensor регистрирует новый датчик
func (s *sensorService) CreateSensor(ctx context.Context, sensor *models.Sensor) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sensor",
		"method":  "CreateSensor",
		"name":    sensor.Name,
	})
	log.Info("Registering a new sensor")

	if sensor.ID == uuid.Nil {
		sensor.ID = uuid.New()
	}
	if sensor.Status == "" {
		sensor.Status = models.SensorStatusOffline
	}

	if err := s.repo.Create(ctx, sensor); err != nil {
		log.WithError(err).Error("Failed to create sensor in repository")
		return fmt.Errorf("service: could not create sensor: %w", err)
	}

	log.WithField("sensor_id", sensor.ID).Info("Sensor registered successfully")
	return nil
}

// GetSensor получает датчик по ID
func (s *sensorService) GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	sensor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to get sensor from repository")
		return nil, fmt.Errorf("service: sensor %s: %w", id, ErrNotFound)
	}
	return sensor, nil
}

// UpdateSensor обновляет паспортные данные датчика
func (s *sensorService) UpdateSensor(ctx context.Context, sensor *models.Sensor) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sensor",
		"method":    "UpdateSensor",
		"sensor_id": sensor.ID,
	})

	existing, err := s.repo.GetByID(ctx, sensor.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent sensor")
		return fmt.Errorf("service: sensor %s: %w", sensor.ID, ErrNotFound)
	}

	if sensor.Name != "" {
		existing.Name = sensor.Name
	}
	if sensor.Kind != "" {
		existing.Kind = sensor.Kind
	}
	if sensor.Location != "" {
		existing.Location = sensor.Location
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update sensor in repository")
		return fmt.Errorf("service: could not update sensor: %w", err)
	}

	log.Info("Sensor updated successfully")
	return nil
}

// DeleteSensor удаляет датчик
func (s *sensorService) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sensor",
		"method":    "DeleteSensor",
		"sensor_id": id,
	})

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete sensor in repository")
		return fmt.Errorf("service: could not delete sensor: %w", err)
	}
	if !ok {
		return fmt.Errorf("service: sensor %s: %w", id, ErrNotFound)
	}

	log.Info("Sensor deleted successfully")
	return nil
}

// ListSensors возвращает все датчики объекта
func (s *sensorService) ListSensors(ctx context.Context) ([]*models.Sensor, error) {
	sensors, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sensors from repository")
		return nil, fmt.Errorf("service: could not list sensors: %w", err)
	}
	return sensors, nil
}

// ListAlerts возвращает тревоги датчиков
func (s *sensorService) ListAlerts(ctx context.Context, unackedOnly bool) ([]*models.SensorAlert, error) {
	alerts, err := s.repo.ListAlerts(ctx, unackedOnly)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sensor alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// AcknowledgeAlert подтверждает тревогу датчика
func (s *sensorService) AcknowledgeAlert(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.AcknowledgeAlert(ctx, id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to acknowledge sensor alert")
		return fmt.Errorf("service: could not acknowledge alert: %w", err)
	}
	if !ok {
		return fmt.Errorf("service: alert %s: %w", id, ErrNotFound)
	}
	return nil
}

// IngestReading принимает показание датчика от устройства: обновляет состояние датчика,
// при статусе alarm создает тревогу и автоматически заводит инцидент
func (s *sensorService) IngestReading(ctx context.Context, reading *models.SensorReading) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sensor",
		"method":    "IngestReading",
		"sensor_id": reading.SensorID,
		"status":    reading.Status,
	})

	sensor, err := s.repo.GetByID(ctx, reading.SensorID)
	if err != nil {
		log.WithError(err).Warn("Reading from unknown sensor")
		return fmt.Errorf("service: sensor %s: %w", reading.SensorID, ErrNotFound)
	}

	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	previousStatus := sensor.Status
	if reading.Status != "" {
		sensor.Status = reading.Status
	}
	if reading.Battery > 0 {
		sensor.Battery = reading.Battery
	}
	sensor.LastSeen = reading.Timestamp

	if err := s.repo.Update(ctx, sensor); err != nil {
		log.WithError(err).Error("Failed to persist sensor reading")
		return fmt.Errorf("service: could not persist sensor reading: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.DeviceStatus(sensor)
	}

	// Новый переход в alarm порождает тревогу и автоинцидент.
	// Повторные показания alarm инцидентов не плодят
	if sensor.Status == models.SensorStatusAlarm && previousStatus != models.SensorStatusAlarm {
		s.raiseAlarm(ctx, sensor, log)
	}

	return nil
}

// raiseAlarm создает тревогу датчика и автоинцидент от её имени
func (s *sensorService) raiseAlarm(ctx context.Context, sensor *models.Sensor, log *logrus.Entry) {
	alert := &models.SensorAlert{
		ID:       uuid.New(),
		SensorID: sensor.ID,
		Level:    models.SeverityHigh,
		Message:  fmt.Sprintf("%s sensor %q reported alarm at %s", sensor.Kind, sensor.Name, sensor.Location),
	}
	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create sensor alert")
	}

	if s.notifier != nil {
		event := notification.Event{
			Type:      notification.EventSensorAlarm,
			Title:     fmt.Sprintf("Sensor alarm: %s", sensor.Name),
			Body:      alert.Message,
			Severity:  alert.Level,
			Timestamp: time.Now(),
		}
		if err := s.notifier.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish sensor alarm notification")
		}
	}

	incident := &models.Incident{
		Title:       fmt.Sprintf("Sensor alarm: %s", sensor.Name),
		Description: alert.Message,
		Location:    sensor.Location,
		Severity:    severityForSensorKind(sensor.Kind),
		Source:      models.SourceHardwareDevice,
		DeviceID:    sensor.ID.String(),
	}
	if err := s.incidents.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to auto-create incident for sensor alarm")
	}
}

// severityForSensorKind возвращает серьёзность автоинцидента по виду датчика
func severityForSensorKind(kind string) string {
	switch kind {
	case models.SensorKindSmoke, models.SensorKindPanic:
		return models.SeverityCritical
	case models.SensorKindDoor:
		return models.SeverityHigh
	}
	return models.SeverityMedium
}
