package escalation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
)

// IncidentSource - подмножество репозитория инцидентов, нужное для эскалации
type IncidentSource interface {
	ListEscalationCandidates(ctx context.Context, cutoff time.Time) ([]*models.Incident, error)
	Escalate(ctx context.Context, id uuid.UUID) (bool, error)
}

// SettingsSource предоставляет актуальные настройки объекта
type SettingsSource interface {
	Get(ctx context.Context) (*models.GuestSafetySettings, error)
}

// Broadcaster рассылает обновления инцидентов по WebSocket-подключениям
type Broadcaster interface {
	IncidentUpdated(incident *models.Incident)
}

// Sweeper - фоновый обход инцидентов: необработанные дольше порога
// поднимаются до критической серьёзности. Обход работает только при
// включённом флаге auto_escalation и перечитывает его на каждом тике
type Sweeper struct {
	incidents   IncidentSource
	settings    SettingsSource
	notifier    notification.Publisher
	broadcaster Broadcaster
	logger      *logrus.Logger
	interval    time.Duration
}

// NewSweeper создает новый Sweeper
func NewSweeper(
	incidents IncidentSource,
	settings SettingsSource,
	notifier notification.Publisher,
	broadcaster Broadcaster,
	logger *logrus.Logger,
	interval time.Duration,
) *Sweeper {
	return &Sweeper{
		incidents:   incidents,
		settings:    settings,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger,
		interval:    interval,
	}
}

// Start запускает горутину обхода: один проход сразу, далее по тикеру.
// Останавливается отменой контекста
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval).Info("Starting escalation sweeper...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.Sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping escalation sweeper.")
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep выполняет один проход: находит кандидатов и эскалирует каждого.
// Сбои по отдельным инцидентам логируются и не прерывают проход
func (s *Sweeper) Sweep(ctx context.Context) {
	log := s.logger.WithField("component", "escalation_sweeper")

	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load settings, skipping sweep")
		return
	}
	if !settings.AutoEscalation {
		log.Debug("Auto-escalation disabled, skipping sweep")
		return
	}

	threshold := time.Duration(settings.AlertThresholdMinutes) * time.Minute
	cutoff := time.Now().Add(-threshold)

	candidates, err := s.incidents.ListEscalationCandidates(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to list escalation candidates")
		return
	}
	if len(candidates) == 0 {
		return
	}

	log.WithField("count", len(candidates)).Info("Escalating aged incidents")
	for _, incident := range candidates {
		s.escalateOne(ctx, incident, log)
	}
}

// escalateOne эскалирует один инцидент. Условный UPDATE в бд гарантирует
// идемпотентность: уже эскалированный инцидент не трогается повторно
func (s *Sweeper) escalateOne(ctx context.Context, incident *models.Incident, log *logrus.Entry) {
	entry := log.WithField("incident_id", incident.ID)

	ok, err := s.incidents.Escalate(ctx, incident.ID)
	if err != nil {
		// Без повторов: следующий проход подхватит
		entry.WithError(err).Error("Failed to escalate incident")
		return
	}
	if !ok {
		entry.Debug("Incident already escalated or no longer reported")
		return
	}

	incident.Severity = models.SeverityCritical
	incident.Escalated = true

	if s.notifier != nil {
		event := notification.Event{
			Type:      notification.EventIncidentEscalated,
			Title:     fmt.Sprintf("Incident escalated: %s", incident.Title),
			Body:      fmt.Sprintf("Incident %s has been unresolved for %d minutes", incident.ID, int(time.Since(incident.ReportedAt).Minutes())),
			Severity:  models.SeverityCritical,
			Timestamp: time.Now(),
			Incident:  incident,
		}
		if err := s.notifier.Publish(ctx, event); err != nil {
			entry.WithError(err).Warn("Failed to publish escalation notification")
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.IncidentUpdated(incident)
	}

	entry.Warn("Incident escalated to critical severity")
}
