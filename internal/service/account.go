package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AccountRepository определяет контракт для работы с бд учётных записей
type AccountRepository interface {
	Create(ctx context.Context, account *models.StaffAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StaffAccount, error)
	GetByEmail(ctx context.Context, email string) (*models.StaffAccount, error)
	Update(ctx context.Context, account *models.StaffAccount) error
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*models.StaffAccount, error)
}

// AccountService определяет контракт для администрирования учётных записей
type AccountService interface {
	CreateAccount(ctx context.Context, account *models.StaffAccount, password string) error
	GetAccount(ctx context.Context, id uuid.UUID) (*models.StaffAccount, error)
	UpdateAccount(ctx context.Context, account *models.StaffAccount) error
	DeactivateAccount(ctx context.Context, id uuid.UUID) error
	ListAccounts(ctx context.Context) ([]*models.StaffAccount, error)
	Login(ctx context.Context, email, password string) (string, *models.StaffAccount, error)
}

// Claims - полезная нагрузка JWT для сессии сотрудника
type Claims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type accountService struct {
	repo     AccountRepository
	logger   *logrus.Logger
	cfg      *config.Config
	notifier notification.Publisher
}

func NewAccountService(repo AccountRepository, logger *logrus.Logger, cfg *config.Config, notifier notification.Publisher) AccountService {
	return &accountService{
		repo:     repo,
		logger:   logger,
		cfg:      cfg,
		notifier: notifier,
	}
}

// CreateAccount создает учётную запись сотрудника с хэшированием пароля
func (s *accountService) CreateAccount(ctx context.Context, account *models.StaffAccount, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "CreateAccount",
		"email":   account.Email,
	})
	log.Info("Attempting to create a staff account")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", err)
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.Role == "" {
		account.Role = models.RoleViewer
	}
	account.PasswordHash = string(hash)
	account.Active = true

	if err := s.repo.Create(ctx, account); err != nil {
		log.WithError(err).Error("Failed to create account in repository")
		return fmt.Errorf("service: could not create account: %w", err)
	}

	// Приветственное уведомление: публикация с ограниченным числом повторов
	s.publishWithRetry(ctx, notification.Event{
		Type:      notification.EventAccountCreated,
		Title:     "Staff account created",
		Body:      fmt.Sprintf("Account %s (%s) was added", account.Name, account.Email),
		Timestamp: time.Now(),
	}, log)

	log.WithField("account_id", account.ID).Info("Staff account created successfully")
	return nil
}

// publishWithRetry публикует уведомление, повторяя не более двух раз с фиксированной задержкой
func (s *accountService) publishWithRetry(ctx context.Context, event notification.Event, log *logrus.Entry) {
	if s.notifier == nil {
		return
	}
	const maxRetries = 2
	for attempt := 0; ; attempt++ {
		err := s.notifier.Publish(ctx, event)
		if err == nil {
			return
		}
		if attempt >= maxRetries {
			log.WithError(err).Warn("Giving up on account notification after retries")
			return
		}
		log.WithError(err).Warnf("Failed to publish account notification, retrying (%d/%d)", attempt+1, maxRetries)
		time.Sleep(s.cfg.WebhookBaseDelay)
	}
}

// GetAccount получает учётную запись по ID
func (s *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*models.StaffAccount, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to get account from repository")
		return nil, fmt.Errorf("service: account %s: %w", id, ErrNotFound)
	}
	return account, nil
}

// UpdateAccount обновляет имя и роль сотрудника
func (s *accountService) UpdateAccount(ctx context.Context, account *models.StaffAccount) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "account",
		"method":     "UpdateAccount",
		"account_id": account.ID,
	})

	existing, err := s.repo.GetByID(ctx, account.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent account")
		return fmt.Errorf("service: account %s: %w", account.ID, ErrNotFound)
	}

	if account.Name != "" {
		existing.Name = account.Name
	}
	if account.Role != "" {
		existing.Role = account.Role
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update account in repository")
		return fmt.Errorf("service: could not update account: %w", err)
	}

	log.Info("Account updated successfully")
	return nil
}

// DeactivateAccount отключает учётную запись, не удаляя её
func (s *accountService) DeactivateAccount(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "account",
		"method":     "DeactivateAccount",
		"account_id": id,
	})

	ok, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to deactivate account in repository")
		return fmt.Errorf("service: could not deactivate account: %w", err)
	}
	if !ok {
		return fmt.Errorf("service: account %s: %w", id, ErrNotFound)
	}

	log.Info("Account deactivated successfully")
	return nil
}

// ListAccounts возвращает все учётные записи
func (s *accountService) ListAccounts(ctx context.Context) ([]*models.StaffAccount, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list accounts from repository")
		return nil, fmt.Errorf("service: could not list accounts: %w", err)
	}
	return accounts, nil
}

// Login проверяет пароль и выдает JWT с ролью сотрудника
func (s *accountService) Login(ctx context.Context, email, password string) (string, *models.StaffAccount, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "Login",
		"email":   email,
	})

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Login attempt for unknown email")
		return "", nil, fmt.Errorf("service: invalid credentials: %w", ErrPermission)
	}
	if !account.Active {
		log.Warn("Login attempt for deactivated account")
		return "", nil, fmt.Errorf("service: account is deactivated: %w", ErrPermission)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return "", nil, fmt.Errorf("service: invalid credentials: %w", ErrPermission)
	}

	now := time.Now()
	claims := Claims{
		Role: account.Role,
		Name: account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.WithError(err).Error("Failed to sign JWT")
		return "", nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	log.Info("Staff login successful")
	return signed, account, nil
}
