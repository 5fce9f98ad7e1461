package escalation

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/escalation/mocks"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	notifmocks "github.com/shenikar/guest_safety_system/internal/notification/mocks"
)

type sweeperMocks struct {
	incidents   *mocks.MockIncidentSource
	settings    *mocks.MockSettingsSource
	notifier    *notifmocks.MockPublisher
	broadcaster *mocks.MockBroadcaster
}

// newTestSweeper — вспомогательная функция для создания Sweeper с моками.
func newTestSweeper(t *testing.T) (*Sweeper, sweeperMocks) {
	ctrl := gomock.NewController(t)

	m := sweeperMocks{
		incidents:   mocks.NewMockIncidentSource(ctrl),
		settings:    mocks.NewMockSettingsSource(ctrl),
		notifier:    notifmocks.NewMockPublisher(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	sweeper := NewSweeper(m.incidents, m.settings, m.notifier, m.broadcaster, logger, time.Minute)
	return sweeper, m
}

func enabledSettings() *models.GuestSafetySettings {
	return &models.GuestSafetySettings{
		AlertThresholdMinutes: 15,
		AutoEscalation:        true,
	}
}

func TestSweep_EscalatesAgedIncidents(t *testing.T) {
	// Подготовка
	sweeper, m := newTestSweeper(t)
	ctx := context.Background()
	incident := &models.Incident{
		ID:         uuid.New(),
		Title:      "Unattended panic button",
		Severity:   models.SeverityHigh,
		Status:     models.IncidentStatusReported,
		ReportedAt: time.Now().Add(-30 * time.Minute),
	}

	// Ожидания
	m.settings.EXPECT().Get(ctx).Return(enabledSettings(), nil)
	m.incidents.EXPECT().
		ListEscalationCandidates(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) ([]*models.Incident, error) {
			// Порог берётся из настроек: отсечка примерно 15 минут назад
			assert.WithinDuration(t, time.Now().Add(-15*time.Minute), cutoff, 5*time.Second)
			return []*models.Incident{incident}, nil
		})
	m.incidents.EXPECT().Escalate(ctx, incident.ID).Return(true, nil)
	m.notifier.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notification.Event) error {
			assert.Equal(t, notification.EventIncidentEscalated, event.Type)
			assert.Equal(t, models.SeverityCritical, event.Severity)
			return nil
		})
	m.broadcaster.EXPECT().IncidentUpdated(incident)

	// Действие
	sweeper.Sweep(ctx)

	// Проверки
	assert.Equal(t, models.SeverityCritical, incident.Severity)
	assert.True(t, incident.Escalated)
}

func TestSweep_DisabledByFlag(t *testing.T) {
	// Подготовка
	sweeper, m := newTestSweeper(t)
	ctx := context.Background()
	settings := enabledSettings()
	settings.AutoEscalation = false

	// Ожидания: при выключенном флаге кандидаты даже не запрашиваются
	m.settings.EXPECT().Get(ctx).Return(settings, nil)
	m.incidents.EXPECT().ListEscalationCandidates(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	sweeper.Sweep(ctx)
}

func TestSweep_SkipsAlreadyEscalated(t *testing.T) {
	// Подготовка
	sweeper, m := newTestSweeper(t)
	ctx := context.Background()
	incident := &models.Incident{
		ID:         uuid.New(),
		Severity:   models.SeverityHigh,
		ReportedAt: time.Now().Add(-time.Hour),
	}

	// Ожидания: условный UPDATE никого не нашёл, уведомление не публикуется
	m.settings.EXPECT().Get(ctx).Return(enabledSettings(), nil)
	m.incidents.EXPECT().ListEscalationCandidates(ctx, gomock.Any()).Return([]*models.Incident{incident}, nil)
	m.incidents.EXPECT().Escalate(ctx, incident.ID).Return(false, nil)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	m.broadcaster.EXPECT().IncidentUpdated(gomock.Any()).Times(0)

	// Действие
	sweeper.Sweep(ctx)

	// Проверки
	assert.Equal(t, models.SeverityHigh, incident.Severity)
	assert.False(t, incident.Escalated)
}

func TestSweep_FailureDoesNotStopPass(t *testing.T) {
	// Подготовка
	sweeper, m := newTestSweeper(t)
	ctx := context.Background()
	first := &models.Incident{ID: uuid.New(), ReportedAt: time.Now().Add(-time.Hour)}
	second := &models.Incident{ID: uuid.New(), ReportedAt: time.Now().Add(-time.Hour)}

	// Ожидания: сбой на первом инциденте не прерывает проход
	m.settings.EXPECT().Get(ctx).Return(enabledSettings(), nil)
	m.incidents.EXPECT().ListEscalationCandidates(ctx, gomock.Any()).Return([]*models.Incident{first, second}, nil)
	m.incidents.EXPECT().Escalate(ctx, first.ID).Return(false, errors.New("connection reset"))
	m.incidents.EXPECT().Escalate(ctx, second.ID).Return(true, nil)
	m.notifier.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().IncidentUpdated(second)

	// Действие
	sweeper.Sweep(ctx)

	// Проверки
	assert.True(t, second.Escalated)
	assert.False(t, first.Escalated)
}

func TestSweep_SettingsErrorSkipsPass(t *testing.T) {
	// Подготовка
	sweeper, m := newTestSweeper(t)
	ctx := context.Background()

	// Ожидания
	m.settings.EXPECT().Get(ctx).Return(nil, errors.New("redis unavailable"))
	m.incidents.EXPECT().ListEscalationCandidates(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	sweeper.Sweep(ctx)
}
