package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

func newTestSettingsService(t *testing.T) (SettingsService, *mocks.MockSettingsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSettingsRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewSettingsService(repoMock, logger), repoMock
}

func TestSettingsGet_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestSettingsService(t)
	ctx := context.Background()
	cached := &models.GuestSafetySettings{AlertThresholdMinutes: 45}

	// Ожидания
	repoMock.EXPECT().GetSettingsFromCache(ctx).Return(cached, nil)
	repoMock.EXPECT().Get(gomock.Any()).Times(0)

	// Действие
	settings, err := svc.Get(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, settings)
}

func TestSettingsGet_DefaultsWhenMissing(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestSettingsService(t)
	ctx := context.Background()

	// Ожидания: записи в бд ещё нет, возвращаются настройки по умолчанию
	repoMock.EXPECT().GetSettingsFromCache(ctx).Return(nil, nil)
	repoMock.EXPECT().Get(ctx).Return(nil, nil)
	repoMock.EXPECT().SetSettingsCache(ctx, gomock.Any()).Return(nil)

	// Действие
	settings, err := svc.Get(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 15, settings.AlertThresholdMinutes)
	assert.True(t, settings.AutoEscalation)
	assert.Equal(t, models.AssignmentManual, settings.TeamAssignment)
}

func TestSettingsSave_InvalidatesCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestSettingsService(t)
	ctx := context.Background()
	settings := &models.GuestSafetySettings{
		AlertThresholdMinutes: 30,
		TeamAssignment:        models.AssignmentRoundRobin,
	}

	// Ожидания
	repoMock.EXPECT().Save(ctx, settings).Return(nil)
	repoMock.EXPECT().InvalidateSettingsCache(ctx).Return(nil)

	// Действие
	err := svc.Save(ctx, settings)

	// Проверки
	require.NoError(t, err)
}

func TestSettingsSave_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestSettingsService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("connection refused"))
	repoMock.EXPECT().InvalidateSettingsCache(gomock.Any()).Times(0)

	// Действие
	err := svc.Save(ctx, &models.GuestSafetySettings{AlertThresholdMinutes: 30})

	// Проверки
	assert.ErrorContains(t, err, "could not save settings")
}
