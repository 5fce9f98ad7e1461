package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	notifmocks "github.com/shenikar/guest_safety_system/internal/notification/mocks"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

type sensorServiceMocks struct {
	repo        *mocks.MockSensorRepository
	incidents   *mocks.MockIncidentService
	notifier    *notifmocks.MockPublisher
	broadcaster *mocks.MockEventBroadcaster
}

func newTestSensorService(t *testing.T) (SensorService, sensorServiceMocks) {
	ctrl := gomock.NewController(t)

	m := sensorServiceMocks{
		repo:        mocks.NewMockSensorRepository(ctrl),
		incidents:   mocks.NewMockIncidentService(ctrl),
		notifier:    notifmocks.NewMockPublisher(ctrl),
		broadcaster: mocks.NewMockEventBroadcaster(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewSensorService(m.repo, m.incidents, logger, m.notifier, m.broadcaster)
	return svc, m
}

func TestIngestReading_AlarmRaisesIncident(t *testing.T) {
	// Подготовка
	svc, m := newTestSensorService(t)
	ctx := context.Background()
	sensor := &models.Sensor{
		ID:       uuid.New(),
		Name:     "Corridor smoke detector",
		Kind:     models.SensorKindSmoke,
		Location: "Floor 2 corridor",
		Status:   models.SensorStatusOnline,
		Battery:  90,
	}
	reading := &models.SensorReading{
		SensorID: sensor.ID,
		Status:   models.SensorStatusAlarm,
		Battery:  85,
	}

	// Ожидания: переход online -> alarm порождает тревогу, уведомление и автоинцидент
	m.repo.EXPECT().GetByID(ctx, sensor.ID).Return(sensor, nil)
	m.repo.EXPECT().Update(ctx, sensor).Return(nil)
	m.broadcaster.EXPECT().DeviceStatus(sensor)
	m.repo.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SensorAlert) error {
			assert.Equal(t, sensor.ID, alert.SensorID)
			assert.Equal(t, models.SeverityHigh, alert.Level)
			return nil
		})
	m.notifier.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notification.Event) error {
			assert.Equal(t, notification.EventSensorAlarm, event.Type)
			return nil
		})
	m.incidents.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, models.SourceHardwareDevice, incident.Source)
			assert.Equal(t, models.SeverityCritical, incident.Severity)
			assert.Equal(t, sensor.ID.String(), incident.DeviceID)
			return nil
		})

	// Действие
	err := svc.IngestReading(ctx, reading)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SensorStatusAlarm, sensor.Status)
	assert.Equal(t, 85, sensor.Battery)
	assert.False(t, sensor.LastSeen.IsZero())
}

func TestIngestReading_RepeatedAlarmDoesNotDuplicate(t *testing.T) {
	// Подготовка
	svc, m := newTestSensorService(t)
	ctx := context.Background()
	sensor := &models.Sensor{
		ID:     uuid.New(),
		Name:   "Panic button",
		Kind:   models.SensorKindPanic,
		Status: models.SensorStatusAlarm,
	}
	reading := &models.SensorReading{
		SensorID:  sensor.ID,
		Status:    models.SensorStatusAlarm,
		Timestamp: time.Now(),
	}

	// Ожидания: датчик уже в alarm, повторное показание инцидентов не плодит
	m.repo.EXPECT().GetByID(ctx, sensor.ID).Return(sensor, nil)
	m.repo.EXPECT().Update(ctx, sensor).Return(nil)
	m.broadcaster.EXPECT().DeviceStatus(sensor)
	m.repo.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.IngestReading(ctx, reading)

	// Проверки
	require.NoError(t, err)
}

func TestIngestReading_UnknownSensor(t *testing.T) {
	// Подготовка
	svc, m := newTestSensorService(t)
	ctx := context.Background()
	sensorID := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, sensorID).Return(nil, assert.AnError)

	// Действие
	err := svc.IngestReading(ctx, &models.SensorReading{SensorID: sensorID, Status: models.SensorStatusOnline})

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSensor_PatchesOnlyProvidedFields(t *testing.T) {
	// Подготовка
	svc, m := newTestSensorService(t)
	ctx := context.Background()
	existing := &models.Sensor{
		ID:       uuid.New(),
		Name:     "Old name",
		Kind:     models.SensorKindDoor,
		Location: "Back entrance",
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
	m.repo.EXPECT().Update(ctx, existing).Return(nil)

	// Действие
	err := svc.UpdateSensor(ctx, &models.Sensor{ID: existing.ID, Name: "New name"})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "New name", existing.Name)
	assert.Equal(t, models.SensorKindDoor, existing.Kind)
	assert.Equal(t, "Back entrance", existing.Location)
}

func TestDeleteSensor_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestSensorService(t)
	ctx := context.Background()
	sensorID := uuid.New()

	// Ожидания
	m.repo.EXPECT().Delete(ctx, sensorID).Return(false, nil)

	// Действие
	err := svc.DeleteSensor(ctx, sensorID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestSensorService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	m.repo.EXPECT().AcknowledgeAlert(ctx, alertID).Return(false, nil)

	// Действие
	err := svc.AcknowledgeAlert(ctx, alertID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}
