package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// EvacuationRepository определяет контракт для работы с бд отметок при эвакуации
type EvacuationRepository interface {
	ListCheckIns(ctx context.Context) ([]*models.EvacuationCheckIn, error)
	UpdateCheckInStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	Headcount(ctx context.Context) (*models.EvacuationHeadcount, error)
}

// EvacuationService определяет контракт для подсчёта гостей при эвакуации
type EvacuationService interface {
	Headcount(ctx context.Context) (*models.EvacuationHeadcount, error)
	ListCheckIns(ctx context.Context) ([]*models.EvacuationCheckIn, error)
	UpdateCheckIn(ctx context.Context, id uuid.UUID, status string) error
}

type evacuationService struct {
	repo   EvacuationRepository
	logger *logrus.Logger
}

func NewEvacuationService(repo EvacuationRepository, logger *logrus.Logger) EvacuationService {
	return &evacuationService{
		repo:   repo,
		logger: logger,
	}
}

// Headcount возвращает агрегированные счётчики по отметкам гостей
func (s *evacuationService) Headcount(ctx context.Context) (*models.EvacuationHeadcount, error) {
	headcount, err := s.repo.Headcount(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get evacuation headcount")
		return nil, fmt.Errorf("service: could not get headcount: %w", err)
	}
	return headcount, nil
}

// ListCheckIns возвращает все индивидуальные отметки гостей
func (s *evacuationService) ListCheckIns(ctx context.Context) ([]*models.EvacuationCheckIn, error) {
	checkIns, err := s.repo.ListCheckIns(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list evacuation check-ins")
		return nil, fmt.Errorf("service: could not list check-ins: %w", err)
	}
	return checkIns, nil
}

// UpdateCheckIn меняет статус отметки гостя
func (s *evacuationService) UpdateCheckIn(ctx context.Context, id uuid.UUID, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "evacuation",
		"method":      "UpdateCheckIn",
		"check_in_id": id,
		"status":      status,
	})

	ok, err := s.repo.UpdateCheckInStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Error("Failed to update check-in status")
		return fmt.Errorf("service: could not update check-in: %w", err)
	}
	if !ok {
		log.Warn("Attempted to update a non-existent check-in")
		return fmt.Errorf("service: check-in %s: %w", id, ErrNotFound)
	}

	log.Info("Check-in status updated")
	return nil
}
