package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

func newTestEvacuationService(t *testing.T) (EvacuationService, *mocks.MockEvacuationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEvacuationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewEvacuationService(repoMock, logger), repoMock
}

func TestHeadcount_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestEvacuationService(t)
	ctx := context.Background()
	expected := &models.EvacuationHeadcount{
		Total:       120,
		Safe:        100,
		InProgress:  15,
		Unaccounted: 5,
	}

	// Ожидания
	repoMock.EXPECT().Headcount(ctx).Return(expected, nil)

	// Действие
	headcount, err := svc.Headcount(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, headcount)
}

func TestUpdateCheckIn_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestEvacuationService(t)
	ctx := context.Background()
	checkInID := uuid.New()

	// Ожидания
	repoMock.EXPECT().UpdateCheckInStatus(ctx, checkInID, models.CheckInStatusSafe).Return(true, nil)

	// Действие
	err := svc.UpdateCheckIn(ctx, checkInID, models.CheckInStatusSafe)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateCheckIn_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestEvacuationService(t)
	ctx := context.Background()
	checkInID := uuid.New()

	// Ожидания
	repoMock.EXPECT().UpdateCheckInStatus(ctx, checkInID, models.CheckInStatusSafe).Return(false, nil)

	// Действие
	err := svc.UpdateCheckIn(ctx, checkInID, models.CheckInStatusSafe)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}
