package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// MessageRepository определяет контракт для работы с бд гостевых сообщений
type MessageRepository interface {
	Create(ctx context.Context, message *models.GuestMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GuestMessage, error)
	List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]*models.GuestMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error)
}

// MessageService определяет контракт для работы с гостевыми сообщениями
type MessageService interface {
	CreateMessage(ctx context.Context, message *models.GuestMessage) error
	ListMessages(ctx context.Context, unreadOnly bool, page, pageSize int) ([]*models.GuestMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	repo        MessageRepository
	logger      *logrus.Logger
	broadcaster EventBroadcaster
}

func NewMessageService(repo MessageRepository, logger *logrus.Logger, broadcaster EventBroadcaster) MessageService {
	return &messageService{
		repo:        repo,
		logger:      logger,
		broadcaster: broadcaster,
	}
}

// CreateMessage сохраняет сообщение и рассылает его по WebSocket-подключениям
func (s *messageService) CreateMessage(ctx context.Context, message *models.GuestMessage) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "message",
		"method":    "CreateMessage",
		"direction": message.Direction,
	})
	log.Info("Attempting to create a guest message")

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Type == "" {
		message.Type = models.MessageTypeRequest
	}
	if message.Direction == "" {
		message.Direction = models.DirectionInbound
	}

	if err := s.repo.Create(ctx, message); err != nil {
		log.WithError(err).Error("Failed to create message in repository")
		return fmt.Errorf("service: could not create message: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.GuestMessage(message)
	}

	log.WithField("message_id", message.ID).Info("Guest message created successfully")
	return nil
}

// ListMessages возвращает сообщения с пагинацией, опционально только непрочитанные
func (s *messageService) ListMessages(ctx context.Context, unreadOnly bool, page, pageSize int) ([]*models.GuestMessage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	messages, err := s.repo.List(ctx, unreadOnly, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list messages from repository")
		return nil, fmt.Errorf("service: could not list messages: %w", err)
	}
	return messages, nil
}

// MarkRead помечает сообщение прочитанным. Повторная пометка не является ошибкой
func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "message",
		"method":     "MarkRead",
		"message_id": id,
	})

	ok, err := s.repo.MarkRead(ctx, id, time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to mark message as read")
		return fmt.Errorf("service: could not mark message as read: %w", err)
	}
	if !ok {
		if _, getErr := s.repo.GetByID(ctx, id); getErr != nil {
			log.WithError(getErr).Warn("Attempted to mark a non-existent message")
			return fmt.Errorf("service: message %s: %w", id, ErrNotFound)
		}
		// Сообщение уже было прочитано, состояние не меняется
		log.Debug("Message already marked as read")
	}

	return nil
}
