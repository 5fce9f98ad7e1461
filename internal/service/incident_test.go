package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	notifmocks "github.com/shenikar/guest_safety_system/internal/notification/mocks"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

type incidentServiceMocks struct {
	repo        *mocks.MockIncidentRepository
	teams       *mocks.MockTeamRepository
	settings    *mocks.MockSettingsService
	notifier    *notifmocks.MockPublisher
	broadcaster *mocks.MockEventBroadcaster
}

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (IncidentService, incidentServiceMocks) {
	ctrl := gomock.NewController(t)

	m := incidentServiceMocks{
		repo:        mocks.NewMockIncidentRepository(ctrl),
		teams:       mocks.NewMockTeamRepository(ctrl),
		settings:    mocks.NewMockSettingsService(ctrl),
		notifier:    notifmocks.NewMockPublisher(ctrl),
		broadcaster: mocks.NewMockEventBroadcaster(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewIncidentService(m.repo, m.teams, m.settings, logger, &config.Config{}, m.notifier, m.broadcaster)
	return svc, m
}

func manualSettings() *models.GuestSafetySettings {
	return &models.GuestSafetySettings{
		AlertThresholdMinutes: 15,
		AutoEscalation:        true,
		TeamAssignment:        models.AssignmentManual,
	}
}

func TestDeriveIncidentType(t *testing.T) {
	cases := []struct {
		title       string
		description string
		want        string
	}{
		{"Medical emergency in lobby", "", models.IncidentTypeMedical},
		{"Guest complaint", "smoke coming from the kitchen", models.IncidentTypeFire},
		{"Start evacuation drill", "", models.IncidentTypeEvacuation},
		{"Suspicious person near pool", "", models.IncidentTypeSecurity},
		{"Loud noise on floor 3", "", models.IncidentTypeNoise},
		{"Broken lamp", "needs replacement", models.IncidentTypeOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveIncidentType(tc.title, tc.description), "title=%q", tc.title)
	}
}

func TestCreateIncident_Defaults(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		Title:    "Guest injured near the pool",
		Location: "Pool deck",
	}

	// Ожидания
	m.repo.EXPECT().FindReportedSince(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.settings.EXPECT().Get(gomock.Any()).Return(manualSettings(), nil).Times(2)
	m.repo.EXPECT().Create(gomock.Any(), incident).Return(nil)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().IncidentCreated(incident)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incident.ID)
	assert.False(t, incident.ReportedAt.IsZero())
	assert.Equal(t, models.SeverityMedium, incident.Severity)
	assert.Equal(t, models.SourceManager, incident.Source)
	assert.Equal(t, models.IncidentStatusReported, incident.Status)
	assert.Equal(t, models.IncidentTypeMedical, incident.Type)
}

func TestCreateIncident_DuplicateWarnsButCreates(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	now := time.Now()
	existing := &models.Incident{
		ID:          uuid.New(),
		Title:       "Fire alarm",
		Description: "smoke detected in corridor near room 212",
		Location:    "Floor 2",
		ReportedAt:  now.Add(-2 * time.Minute),
	}
	incident := &models.Incident{
		Title:       "Fire alarm repeat",
		Description: "smoke detected in corridor, guests complaining",
		Location:    "Floor 2",
		ReportedAt:  now,
	}

	// Ожидания: подозрение на дубль публикуется отдельным событием,
	// но инцидент всё равно создаётся
	m.repo.EXPECT().FindReportedSince(gomock.Any(), gomock.Any()).Return([]*models.Incident{existing}, nil)
	m.notifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event notification.Event) error {
			assert.Equal(t, notification.EventDuplicateSuspect, event.Type)
			return nil
		})
	m.settings.EXPECT().Get(gomock.Any()).Return(manualSettings(), nil).Times(2)
	m.repo.EXPECT().Create(gomock.Any(), incident).Return(nil)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().IncidentCreated(incident)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
}

func TestCreateIncident_RoundRobinAssignment(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	teams := []*models.ResponseTeam{
		{ID: uuid.New(), Name: "Security A"},
		{ID: uuid.New(), Name: "Security B"},
	}
	incident := &models.Incident{
		Title:    "Intruder on the roof",
		Location: "Roof",
	}
	settings := manualSettings()
	settings.TeamAssignment = models.AssignmentRoundRobin

	// Ожидания
	m.repo.EXPECT().FindReportedSince(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.settings.EXPECT().Get(gomock.Any()).Return(settings, nil).Times(2)
	m.teams.EXPECT().ListAvailable(gomock.Any()).Return(teams, nil)
	m.teams.EXPECT().NextRoundRobin(gomock.Any(), 2).Return(1, nil)
	m.teams.EXPECT().SetStatus(gomock.Any(), teams[1].ID, models.TeamStatusResponding).Return(nil)
	m.repo.EXPECT().Create(gomock.Any(), incident).Return(nil)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().IncidentCreated(incident)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, incident.AssignedTeamID)
	assert.Equal(t, teams[1].ID, *incident.AssignedTeamID)
	assert.Equal(t, models.IncidentStatusResponding, incident.Status)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:    incidentID,
		Title: "Инцидент из кеша",
	}

	// Ожидания: при попадании в кеш бд не трогается
	m.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(expectedIncident, nil)
	m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:    incidentID,
		Title: "Инцидент из бд",
	}

	// Ожидания
	m.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil)
	m.repo.EXPECT().SetIncidentCache(ctx, expectedIncident).Return(nil)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, errors.New("no rows in result set"))

	// Действие
	_, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignTeam_RequiresManager(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания: до бд дело не доходит
	m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().AssignTeam(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.AssignTeam(ctx, models.RoleAgent, uuid.New(), uuid.New())

	// Проверки
	assert.ErrorIs(t, err, ErrPermission)
}

func TestAssignTeam_RejectsAlreadyAssigned(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	teamID := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{
		ID:     incidentID,
		Status: models.IncidentStatusResponding,
	}, nil)
	m.repo.EXPECT().AssignTeam(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.AssignTeam(ctx, models.RoleManager, incidentID, teamID)

	// Проверки
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAssignTeam_LostRace(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	teamID := uuid.New()

	// Ожидания: чтение видит reported, но условный UPDATE уже никого не находит
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{
		ID:     incidentID,
		Status: models.IncidentStatusReported,
	}, nil)
	m.teams.EXPECT().GetByID(ctx, teamID).Return(&models.ResponseTeam{ID: teamID}, nil)
	m.repo.EXPECT().AssignTeam(ctx, incidentID, teamID).Return(false, nil)

	// Действие
	err := svc.AssignTeam(ctx, models.RoleManager, incidentID, teamID)

	// Проверки
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAssignTeam_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	teamID := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{
		ID:     incidentID,
		Title:  "Fight in the bar",
		Status: models.IncidentStatusReported,
	}, nil)
	m.teams.EXPECT().GetByID(ctx, teamID).Return(&models.ResponseTeam{ID: teamID}, nil)
	m.repo.EXPECT().AssignTeam(ctx, incidentID, teamID).Return(true, nil)
	m.teams.EXPECT().SetStatus(ctx, teamID, models.TeamStatusResponding).Return(nil)
	m.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	m.settings.EXPECT().Get(gomock.Any()).Return(manualSettings(), nil)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().IncidentUpdated(gomock.Any())

	// Действие
	err := svc.AssignTeam(ctx, models.RoleManager, incidentID, teamID)

	// Проверки
	require.NoError(t, err)
}

func TestResolveIncident_AlreadyResolved(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	m.repo.EXPECT().Resolve(ctx, incidentID).Return(false, nil)
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{
		ID:     incidentID,
		Status: models.IncidentStatusResolved,
	}, nil)

	// Действие
	err := svc.ResolveIncident(ctx, models.RoleManager, incidentID)

	// Проверки
	assert.ErrorIs(t, err, ErrConflict)
}

func TestResolveIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	m.repo.EXPECT().Resolve(ctx, incidentID).Return(false, nil)
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, errors.New("no rows in result set"))

	// Действие
	err := svc.ResolveIncident(ctx, models.RoleManager, incidentID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveIncident_ReleasesAssignedTeam(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	teamID := uuid.New()

	// Ожидания
	m.repo.EXPECT().Resolve(ctx, incidentID).Return(true, nil)
	m.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{
		ID:             incidentID,
		Status:         models.IncidentStatusResolved,
		AssignedTeamID: &teamID,
	}, nil)
	m.teams.EXPECT().SetStatus(ctx, teamID, models.TeamStatusAvailable).Return(nil)
	m.settings.EXPECT().Get(gomock.Any()).Return(manualSettings(), nil)
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().IncidentUpdated(gomock.Any())

	// Действие
	err := svc.ResolveIncident(ctx, models.RoleManager, incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestApplyPushedIncident_KnownIDSkipped(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Title: "Pushed incident", Location: "Lobby"}

	// Ожидания: повторный push по известному ID не создаёт дубликат
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID}, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.ApplyPushedIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
}

func TestApplyPushedUpdate_StaleDiscarded(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	stored := &models.Incident{
		ID:         incidentID,
		Title:      "Stored",
		Status:     models.IncidentStatusResponding,
		ReportedAt: time.Now(),
	}
	update := &models.Incident{
		ID:         incidentID,
		Title:      "Stale update",
		ReportedAt: stored.ReportedAt.Add(-5 * time.Second),
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(stored, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.ApplyPushedUpdate(ctx, update)

	// Проверки
	assert.ErrorIs(t, err, ErrStaleUpdate)
}

func TestApplyPushedUpdate_WithinSkewTolerance(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	stored := &models.Incident{
		ID:         incidentID,
		Title:      "Stored",
		Status:     models.IncidentStatusReported,
		ReportedAt: time.Now(),
	}
	update := &models.Incident{
		ID:         incidentID,
		Title:      "Slightly behind but acceptable",
		ReportedAt: stored.ReportedAt.Add(-500 * time.Millisecond),
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(stored, nil)
	m.repo.EXPECT().Update(ctx, stored).Return(nil)
	m.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	m.broadcaster.EXPECT().IncidentUpdated(stored)

	// Действие
	err := svc.ApplyPushedUpdate(ctx, update)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Slightly behind but acceptable", stored.Title)
}

func TestApplyPushedUpdate_StatusOnlyMovesForward(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	stored := &models.Incident{
		ID:         incidentID,
		Title:      "Stored",
		Status:     models.IncidentStatusResponding,
		ReportedAt: time.Now().Add(-time.Minute),
	}
	update := &models.Incident{
		ID:         incidentID,
		Status:     models.IncidentStatusReported,
		ReportedAt: time.Now(),
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(stored, nil)
	m.repo.EXPECT().Update(ctx, stored).Return(nil)
	m.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	m.broadcaster.EXPECT().IncidentUpdated(stored)

	// Действие
	err := svc.ApplyPushedUpdate(ctx, update)

	// Проверки: попятный переход responding -> reported игнорируется
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResponding, stored.Status)
}

func TestUpdateIncident_RederivesType(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	stored := &models.Incident{
		ID:          incidentID,
		Title:       "Loud noise on floor 5",
		Description: "guests reported loud music",
		Status:      models.IncidentStatusReported,
		Type:        models.IncidentTypeNoise,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(stored, nil)
	m.repo.EXPECT().Update(ctx, stored).Return(nil)
	m.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	m.broadcaster.EXPECT().IncidentUpdated(stored)

	// Действие
	err := svc.UpdateIncident(ctx, &models.Incident{
		ID:    incidentID,
		Title: "Fight broke out on floor 5",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentTypeSecurity, stored.Type)
}
