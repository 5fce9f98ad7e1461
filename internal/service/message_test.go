package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

func newTestMessageService(t *testing.T) (MessageService, *mocks.MockMessageRepository, *mocks.MockEventBroadcaster) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMessageRepository(ctrl)
	broadcasterMock := mocks.NewMockEventBroadcaster(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewMessageService(repoMock, logger, broadcasterMock), repoMock, broadcasterMock
}

func TestCreateMessage_DefaultsAndBroadcast(t *testing.T) {
	// Подготовка
	svc, repoMock, broadcasterMock := newTestMessageService(t)
	ctx := context.Background()
	message := &models.GuestMessage{
		GuestName: "John Doe",
		GuestRoom: "212",
		Text:      "Water leak in the bathroom",
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, message).Return(nil)
	broadcasterMock.EXPECT().GuestMessage(message)

	// Действие
	err := svc.CreateMessage(ctx, message)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, message.ID)
	assert.Equal(t, models.MessageTypeRequest, message.Type)
	assert.Equal(t, models.DirectionInbound, message.Direction)
}

func TestMarkRead_Idempotent(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestMessageService(t)
	ctx := context.Background()
	messageID := uuid.New()

	// Ожидания: сообщение существует, но уже прочитано - это не ошибка
	repoMock.EXPECT().MarkRead(ctx, messageID, gomock.Any()).Return(false, nil)
	repoMock.EXPECT().GetByID(ctx, messageID).Return(&models.GuestMessage{ID: messageID, Read: true}, nil)

	// Действие
	err := svc.MarkRead(ctx, messageID)

	// Проверки
	require.NoError(t, err)
}

func TestMarkRead_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestMessageService(t)
	ctx := context.Background()
	messageID := uuid.New()

	// Ожидания
	repoMock.EXPECT().MarkRead(ctx, messageID, gomock.Any()).Return(false, nil)
	repoMock.EXPECT().GetByID(ctx, messageID).Return(nil, errors.New("no rows in result set"))

	// Действие
	err := svc.MarkRead(ctx, messageID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMessages_NormalizesPagination(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestMessageService(t)
	ctx := context.Background()

	// Ожидания: некорректная пагинация приводится к значениям по умолчанию
	repoMock.EXPECT().List(ctx, true, 1, 20).Return([]*models.GuestMessage{}, nil)

	// Действие
	messages, err := svc.ListMessages(ctx, true, 0, 500)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, messages)
}
