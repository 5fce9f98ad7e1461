package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
)

const (
	// duplicateWindow - симметричное окно времени для эвристики дублей
	duplicateWindow = 5 * time.Minute
	// duplicatePrefixLen - длина префикса описания для грубой проверки похожести
	duplicatePrefixLen = 20
	// clockSkewTolerance - допуск на рассинхронизацию часов при приёме push-обновлений
	clockSkewTolerance = time.Second
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	List(ctx context.Context, filter models.IncidentFilter, page, pageSize int) ([]*models.Incident, error)
	AssignTeam(ctx context.Context, incidentID, teamID uuid.UUID) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID) (bool, error)
	Escalate(ctx context.Context, id uuid.UUID) (bool, error)
	ListEscalationCandidates(ctx context.Context, cutoff time.Time) ([]*models.Incident, error)
	FindReportedSince(ctx context.Context, since time.Time) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// TeamRepository определяет контракт для работы с группами реагирования
type TeamRepository interface {
	List(ctx context.Context) ([]*models.ResponseTeam, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ResponseTeam, error)
	ListAvailable(ctx context.Context) ([]*models.ResponseTeam, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	NextRoundRobin(ctx context.Context, teamCount int) (int, error)
}

// EventBroadcaster рассылает события по WebSocket-подключениям персонала
type EventBroadcaster interface {
	IncidentCreated(incident *models.Incident)
	IncidentUpdated(incident *models.Incident)
	DeviceStatus(sensor *models.Sensor)
	GuestMessage(message *models.GuestMessage)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	ListIncidents(ctx context.Context, filter models.IncidentFilter, page, pageSize int) ([]*models.Incident, error)
	AssignTeam(ctx context.Context, actorRole string, incidentID, teamID uuid.UUID) error
	ResolveIncident(ctx context.Context, actorRole string, id uuid.UUID) error
	ApplyPushedIncident(ctx context.Context, incident *models.Incident) error
	ApplyPushedUpdate(ctx context.Context, update *models.Incident) error
	ListTeams(ctx context.Context) ([]*models.ResponseTeam, error)
}

type incidentService struct {
	repo        IncidentRepository
	teams       TeamRepository
	settings    SettingsService
	logger      *logrus.Logger
	cfg         *config.Config
	notifier    notification.Publisher
	broadcaster EventBroadcaster
}

func NewIncidentService(
	repo IncidentRepository,
	teams TeamRepository,
	settings SettingsService,
	logger *logrus.Logger,
	cfg *config.Config,
	notifier notification.Publisher,
	broadcaster EventBroadcaster,
) IncidentService {
	return &incidentService{
		repo:        repo,
		teams:       teams,
		settings:    settings,
		logger:      logger,
		cfg:         cfg,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

// incidentTypeKeywords - таблица ключевых слов для вывода типа инцидента
var incidentTypeKeywords = []struct {
	incidentType string
	keywords     []string
}{
	{models.IncidentTypeMedical, []string{"medical", "injury", "injured", "ambulance", "unconscious"}},
	{models.IncidentTypeFire, []string{"fire", "smoke", "burning"}},
	{models.IncidentTypeEvacuation, []string{"evacuation", "evacuate"}},
	{models.IncidentTypeSecurity, []string{"security", "intruder", "theft", "fight", "assault", "suspicious"}},
	{models.IncidentTypeNoise, []string{"noise", "loud"}},
}

// DeriveIncidentType выводит тип инцидента по ключевым словам из заголовка и описания
func DeriveIncidentType(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, entry := range incidentTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.incidentType
			}
		}
	}
	return models.IncidentTypeOther
}

// statusRank возвращает порядковый номер статуса для проверки монотонности переходов
func statusRank(status string) int {
	switch status {
	case models.IncidentStatusReported:
		return 0
	case models.IncidentStatusResponding:
		return 1
	case models.IncidentStatusResolved:
		return 2
	}
	return -1
}

// CreateIncident создает инцидент: проставляет значения по умолчанию, выводит тип,
// прогоняет эвристику дублей (только рекомендательную) и применяет стратегию назначения группы
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
		"source":  incident.Source,
	})
	log.Info("Attempting to create a new incident")

	now := time.Now()
	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	if incident.ReportedAt.IsZero() {
		incident.ReportedAt = now
	}
	if incident.Severity == "" {
		incident.Severity = models.SeverityMedium
	}
	if incident.Source == "" {
		incident.Source = models.SourceManager
	}
	incident.Status = models.IncidentStatusReported
	incident.Type = DeriveIncidentType(incident.Title, incident.Description)

	// Эвристика дублей: только предупреждение, инцидент создаётся в любом случае
	s.warnIfDuplicate(ctx, incident)

	// Стратегия назначения группы берётся из настроек; ошибки настроек не блокируют создание
	s.applyAssignmentStrategy(ctx, incident, log)

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publishIncidentEvent(ctx, notification.EventIncidentCreated, incident)
	if s.broadcaster != nil {
		s.broadcaster.IncidentCreated(incident)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// warnIfDuplicate сравнивает новый инцидент с недавними: окно 5 минут, точное совпадение
// локации или комнаты и грубая проверка похожести описания по 20-символьному префиксу
func (s *incidentService) warnIfDuplicate(ctx context.Context, incident *models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "warnIfDuplicate",
		"incident_id": incident.ID,
	})

	since := incident.ReportedAt.Add(-duplicateWindow)
	recent, err := s.repo.FindReportedSince(ctx, since)
	if err != nil {
		// Проверка рекомендательная, ошибка не блокирует создание
		log.WithError(err).Warn("Failed to fetch recent incidents for duplicate check")
		return
	}

	for _, existing := range recent {
		if existing.ID == incident.ID {
			continue
		}
		if !withinWindow(existing.ReportedAt, incident.ReportedAt, duplicateWindow) {
			continue
		}
		samePlace := (incident.Location != "" && existing.Location == incident.Location) ||
			(incident.Room != "" && existing.Room == incident.Room)
		if !samePlace {
			continue
		}
		if !descriptionsSimilar(existing.Description, incident.Description) {
			continue
		}

		log.WithField("existing_id", existing.ID).Warn("Possible duplicate incident detected")
		if s.notifier != nil {
			event := notification.Event{
				Type:      notification.EventDuplicateSuspect,
				Title:     "Possible duplicate incident",
				Body:      fmt.Sprintf("Incident %s looks like a duplicate of %s", incident.ID, existing.ID),
				Severity:  incident.Severity,
				Timestamp: time.Now(),
				Incident:  incident,
			}
			if err := s.notifier.Publish(ctx, event); err != nil {
				log.WithError(err).Warn("Failed to publish duplicate suspect notification")
			}
		}
		return
	}
}

// withinWindow проверяет, что две метки времени отстоят не более чем на window
func withinWindow(a, b time.Time, window time.Duration) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

// descriptionsSimilar - грубая проверка: содержит ли одно описание первые 20 символов другого
func descriptionsSimilar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	prefixA := a
	if len(prefixA) > duplicatePrefixLen {
		prefixA = prefixA[:duplicatePrefixLen]
	}
	prefixB := b
	if len(prefixB) > duplicatePrefixLen {
		prefixB = prefixB[:duplicatePrefixLen]
	}
	return strings.Contains(b, prefixA) || strings.Contains(a, prefixB)
}

// applyAssignmentStrategy назначает группу реагирования согласно настройкам объекта
func (s *incidentService) applyAssignmentStrategy(ctx context.Context, incident *models.Incident, log *logrus.Entry) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load settings, skipping team assignment")
		return
	}

	if settings.TeamAssignment == models.AssignmentManual {
		return
	}

	available, err := s.teams.ListAvailable(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to list available teams, skipping team assignment")
		return
	}
	if len(available) == 0 {
		log.Info("No available teams for automatic assignment")
		return
	}

	team := available[0]
	if settings.TeamAssignment == models.AssignmentRoundRobin {
		idx, err := s.teams.NextRoundRobin(ctx, len(available))
		if err != nil {
			log.WithError(err).Warn("Failed to advance round-robin counter, using first available team")
		} else {
			team = available[idx]
		}
	}

	incident.AssignedTeamID = &team.ID
	incident.Status = models.IncidentStatusResponding
	if err := s.teams.SetStatus(ctx, team.ID, models.TeamStatusResponding); err != nil {
		log.WithError(err).Warn("Failed to update team status after assignment")
	}
	log.WithField("team_id", team.ID).Info("Team assigned automatically")
}

// GetIncident получает инцидент по ID, сначала из кеша, затем из бд
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", ErrNotFound)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// UpdateIncident обновляет описательные поля инцидента. Статус через этот метод не меняется
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident %s: %w", incident.ID, ErrNotFound)
	}

	if incident.Title != "" {
		existing.Title = incident.Title
	}
	if incident.Description != "" {
		existing.Description = incident.Description
	}
	if incident.Location != "" {
		existing.Location = incident.Location
	}
	if incident.Room != "" {
		existing.Room = incident.Room
	}
	if incident.Severity != "" {
		existing.Severity = incident.Severity
	}
	existing.Type = DeriveIncidentType(existing.Title, existing.Description)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, existing.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	if s.broadcaster != nil {
		s.broadcaster.IncidentUpdated(existing)
	}

	log.Info("Incident updated successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с фильтрами и пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// AssignTeam назначает группу реагирования на инцидент.
// Требует роль manager и статус строго "reported": повторное назначение отклоняется
// до обращения к бд, гонка на уровне бд закрывается условным UPDATE
func (s *incidentService) AssignTeam(ctx context.Context, actorRole string, incidentID, teamID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AssignTeam",
		"incident_id": incidentID,
		"team_id":     teamID,
	})

	if actorRole != models.RoleManager {
		log.Warn("Assign rejected: caller is not a manager")
		return fmt.Errorf("service: assign team requires manager role: %w", ErrPermission)
	}

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign team to a non-existent incident")
		return fmt.Errorf("service: incident %s: %w", incidentID, ErrNotFound)
	}

	if incident.Status != models.IncidentStatusReported {
		log.WithField("status", incident.Status).Warn("Assign rejected: incident already assigned or resolved")
		return fmt.Errorf("service: incident already assigned or resolved: %w", ErrConflict)
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent team")
		return fmt.Errorf("service: team %s: %w", teamID, ErrNotFound)
	}

	ok, err := s.repo.AssignTeam(ctx, incidentID, teamID)
	if err != nil {
		log.WithError(err).Error("Failed to assign team in repository")
		return fmt.Errorf("service: could not assign team: %w", err)
	}
	if !ok {
		// Состояние изменилось между чтением и условным UPDATE
		log.Warn("Assign lost the race: incident state changed")
		return fmt.Errorf("service: incident already assigned or resolved: %w", ErrConflict)
	}

	if err := s.teams.SetStatus(ctx, team.ID, models.TeamStatusResponding); err != nil {
		log.WithError(err).Warn("Failed to update team status after assignment")
	}
	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	incident.Status = models.IncidentStatusResponding
	incident.AssignedTeamID = &teamID
	s.publishIncidentEvent(ctx, notification.EventIncidentAssigned, incident)
	if s.broadcaster != nil {
		s.broadcaster.IncidentUpdated(incident)
	}

	log.Info("Team assigned successfully")
	return nil
}

// ResolveIncident переводит инцидент в статус resolved. Переход односторонний
func (s *incidentService) ResolveIncident(ctx context.Context, actorRole string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
	})

	if actorRole != models.RoleManager {
		log.Warn("Resolve rejected: caller is not a manager")
		return fmt.Errorf("service: resolve incident requires manager role: %w", ErrPermission)
	}

	ok, err := s.repo.Resolve(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}
	if !ok {
		incident, getErr := s.repo.GetByID(ctx, id)
		if getErr != nil {
			log.WithError(getErr).Warn("Attempted to resolve a non-existent incident")
			return fmt.Errorf("service: incident %s: %w", id, ErrNotFound)
		}
		log.WithField("status", incident.Status).Warn("Resolve rejected: incident already resolved")
		return fmt.Errorf("service: incident already resolved: %w", ErrConflict)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Resolved incident could not be re-read for broadcast")
		return nil
	}

	// Освобождаем группу, если была назначена
	if incident.AssignedTeamID != nil {
		if err := s.teams.SetStatus(ctx, *incident.AssignedTeamID, models.TeamStatusAvailable); err != nil {
			log.WithError(err).Warn("Failed to release team after resolve")
		}
	}

	s.publishIncidentEvent(ctx, notification.EventIncidentResolved, incident)
	if s.broadcaster != nil {
		s.broadcaster.IncidentUpdated(incident)
	}

	log.Info("Incident resolved successfully")
	return nil
}

// ApplyPushedIncident принимает инцидент, присланный устройством или мобильным агентом.
// Дубликаты по ID игнорируются
func (s *incidentService) ApplyPushedIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ApplyPushedIncident",
		"incident_id": incident.ID,
	})

	if incident.ID != uuid.Nil {
		if existing, err := s.repo.GetByID(ctx, incident.ID); err == nil && existing != nil {
			log.Info("Pushed incident already known, skipping")
			return nil
		}
	}

	return s.CreateIncident(ctx, incident)
}

// ApplyPushedUpdate применяет push-обновление инцидента. Обновление с reported_at
// старше сохранённого более чем на допуск рассинхронизации часов отбрасывается
func (s *incidentService) ApplyPushedUpdate(ctx context.Context, update *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ApplyPushedUpdate",
		"incident_id": update.ID,
	})

	existing, err := s.repo.GetByID(ctx, update.ID)
	if err != nil {
		log.WithError(err).Warn("Pushed update for unknown incident")
		return fmt.Errorf("service: incident %s: %w", update.ID, ErrNotFound)
	}

	if update.ReportedAt.Add(clockSkewTolerance).Before(existing.ReportedAt) {
		log.WithFields(logrus.Fields{
			"stored_reported_at": existing.ReportedAt,
			"pushed_reported_at": update.ReportedAt,
		}).Warn("Discarding stale pushed update")
		return ErrStaleUpdate
	}

	if update.Title != "" {
		existing.Title = update.Title
	}
	if update.Description != "" {
		existing.Description = update.Description
	}
	if update.Location != "" {
		existing.Location = update.Location
	}
	if update.Severity != "" {
		existing.Severity = update.Severity
	}
	// Статус принимается только вперёд, попятные переходы игнорируются
	if statusRank(update.Status) > statusRank(existing.Status) {
		existing.Status = update.Status
	}
	existing.Type = DeriveIncidentType(existing.Title, existing.Description)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to apply pushed update")
		return fmt.Errorf("service: could not apply pushed update: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, existing.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	if s.broadcaster != nil {
		s.broadcaster.IncidentUpdated(existing)
	}

	log.Info("Pushed update applied")
	return nil
}

// ListTeams возвращает все группы реагирования
func (s *incidentService) ListTeams(ctx context.Context) ([]*models.ResponseTeam, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list teams from repository")
		return nil, fmt.Errorf("service: could not list teams: %w", err)
	}
	return teams, nil
}

// publishIncidentEvent публикует уведомление об инциденте в очередь доставки.
// Каналы берутся из настроек; сбой публикации логируется и не прерывает операцию
func (s *incidentService) publishIncidentEvent(ctx context.Context, eventType string, incident *models.Incident) {
	if s.notifier == nil {
		return
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "publishIncidentEvent",
		"event_type":  eventType,
		"incident_id": incident.ID,
	})

	var channels []string
	if settings, err := s.settings.Get(ctx); err == nil {
		if settings.NotifySMS {
			channels = append(channels, "sms")
		}
		if settings.NotifyEmail {
			channels = append(channels, "email")
		}
		if settings.NotifyPush {
			channels = append(channels, "push")
		}
	} else {
		log.WithError(err).Warn("Failed to load settings for notification channels")
	}

	event := notification.Event{
		Type:      eventType,
		Title:     incident.Title,
		Body:      incident.Description,
		Severity:  incident.Severity,
		Channels:  channels,
		Timestamp: time.Now(),
		Incident:  incident,
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident notification")
	}
}
