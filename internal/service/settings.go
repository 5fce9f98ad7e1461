package service

import (
	"context"
	"fmt"

	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SettingsRepository определяет контракт для работы с хранилищем настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*models.GuestSafetySettings, error)
	Save(ctx context.Context, settings *models.GuestSafetySettings) error
	GetSettingsFromCache(ctx context.Context) (*models.GuestSafetySettings, error)
	SetSettingsCache(ctx context.Context, settings *models.GuestSafetySettings) error
	InvalidateSettingsCache(ctx context.Context) error
}

// SettingsService определяет контракт для работы с настройками объекта
type SettingsService interface {
	Get(ctx context.Context) (*models.GuestSafetySettings, error)
	Save(ctx context.Context, settings *models.GuestSafetySettings) error
}

type settingsService struct {
	repo   SettingsRepository
	logger *logrus.Logger
}

func NewSettingsService(repo SettingsRepository, logger *logrus.Logger) SettingsService {
	return &settingsService{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает настройки объекта: сначала из кеша, затем из бд,
// при отсутствии записи - настройки по умолчанию
func (s *settingsService) Get(ctx context.Context) (*models.GuestSafetySettings, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "settings",
		"method":  "Get",
	})

	cached, err := s.repo.GetSettingsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read settings from cache")
	}
	if cached != nil {
		return cached, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get settings from repository")
		return nil, fmt.Errorf("service: could not get settings: %w", err)
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}

	if err := s.repo.SetSettingsCache(ctx, settings); err != nil {
		log.WithError(err).Warn("Failed to cache settings")
	}
	return settings, nil
}

// Save заменяет настройки объекта целиком
func (s *settingsService) Save(ctx context.Context, settings *models.GuestSafetySettings) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "settings",
		"method":  "Save",
	})
	log.Info("Saving guest safety settings")

	if err := s.repo.Save(ctx, settings); err != nil {
		log.WithError(err).Error("Failed to save settings in repository")
		return fmt.Errorf("service: could not save settings: %w", err)
	}

	if err := s.repo.InvalidateSettingsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate settings cache")
	}

	log.Info("Settings saved successfully")
	return nil
}
