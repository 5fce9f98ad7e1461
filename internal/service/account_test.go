package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/models"
	notifmocks "github.com/shenikar/guest_safety_system/internal/notification/mocks"
	"github.com/shenikar/guest_safety_system/internal/service/mocks"
)

func newTestAccountService(t *testing.T) (AccountService, *mocks.MockAccountRepository, *notifmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAccountRepository(ctrl)
	notifierMock := notifmocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret:        "test-jwt-secret",
		JWTTTL:           time.Hour,
		WebhookBaseDelay: time.Millisecond,
	}

	return NewAccountService(repoMock, logger, cfg, notifierMock), repoMock, notifierMock
}

func mustHash(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateAccount_HashesPasswordAndDefaults(t *testing.T) {
	// Подготовка
	svc, repoMock, notifierMock := newTestAccountService(t)
	ctx := context.Background()
	account := &models.StaffAccount{
		Email: "agent@hotel.example",
		Name:  "New Agent",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, account).
		DoAndReturn(func(_ context.Context, acc *models.StaffAccount) error {
			assert.NotEqual(t, uuid.Nil, acc.ID)
			assert.True(t, acc.Active)
			assert.Equal(t, models.RoleViewer, acc.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("long-enough-password")))
			return nil
		})
	notifierMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	// Действие
	err := svc.CreateAccount(ctx, account, "long-enough-password")

	// Проверки
	require.NoError(t, err)
}

func TestCreateAccount_NotificationRetries(t *testing.T) {
	// Подготовка
	svc, repoMock, notifierMock := newTestAccountService(t)
	ctx := context.Background()
	account := &models.StaffAccount{Email: "agent@hotel.example", Name: "New Agent"}

	// Ожидания: две неудачи, третья попытка успешна; создание не блокируется
	repoMock.EXPECT().Create(ctx, account).Return(nil)
	gomock.InOrder(
		notifierMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("webhook timeout")),
		notifierMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("webhook timeout")),
		notifierMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
	)

	// Действие
	err := svc.CreateAccount(ctx, account, "long-enough-password")

	// Проверки
	require.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAccountService(t)
	ctx := context.Background()
	account := &models.StaffAccount{
		ID:           uuid.New(),
		Email:        "manager@hotel.example",
		Name:         "Manager",
		Role:         models.RoleManager,
		Active:       true,
		PasswordHash: mustHash(t, "secret-password"),
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

	// Действие
	signed, got, err := svc.Login(ctx, account.Email, "secret-password")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, account, got)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte("test-jwt-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Equal(t, account.ID.String(), claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAccountService(t)
	ctx := context.Background()
	account := &models.StaffAccount{
		ID:           uuid.New(),
		Email:        "manager@hotel.example",
		Active:       true,
		PasswordHash: mustHash(t, "secret-password"),
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

	// Действие
	_, _, err := svc.Login(ctx, account.Email, "wrong-password")

	// Проверки
	assert.ErrorIs(t, err, ErrPermission)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAccountService(t)
	ctx := context.Background()
	account := &models.StaffAccount{
		ID:           uuid.New(),
		Email:        "former@hotel.example",
		Active:       false,
		PasswordHash: mustHash(t, "secret-password"),
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

	// Действие
	_, _, err := svc.Login(ctx, account.Email, "secret-password")

	// Проверки
	assert.ErrorIs(t, err, ErrPermission)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAccountService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "ghost@hotel.example").Return(nil, errors.New("no rows in result set"))

	// Действие
	_, _, err := svc.Login(ctx, "ghost@hotel.example", "whatever")

	// Проверки
	assert.ErrorIs(t, err, ErrPermission)
}

func TestDeactivateAccount_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	// Ожидания
	repoMock.EXPECT().Deactivate(ctx, accountID).Return(false, nil)

	// Действие
	err := svc.DeactivateAccount(ctx, accountID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotFound)
}
