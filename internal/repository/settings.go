package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
)

const settingsCacheKey = "guest_safety_settings"

type SettingsRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSettingsRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SettingsRepository {
	return &SettingsRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Get возвращает единственную запись настроек. Если записи нет, возвращает nil без ошибки
func (r *SettingsRepository) Get(ctx context.Context) (*models.GuestSafetySettings, error) {
	query := `
		SELECT alert_threshold_minutes, auto_escalation, notify_sms, notify_email,
			notify_push, team_assignment, updated_at
		FROM guest_safety_settings
		WHERE id = 1;
	`
	settings := &models.GuestSafetySettings{}
	err := r.db.QueryRow(ctx, query).Scan(
		&settings.AlertThresholdMinutes,
		&settings.AutoEscalation,
		&settings.NotifySMS,
		&settings.NotifyEmail,
		&settings.NotifyPush,
		&settings.TeamAssignment,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Save заменяет запись настроек целиком (UPSERT единственной строки)
func (r *SettingsRepository) Save(ctx context.Context, settings *models.GuestSafetySettings) error {
	query := `
		INSERT INTO guest_safety_settings (
			id, alert_threshold_minutes, auto_escalation, notify_sms,
			notify_email, notify_push, team_assignment, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			alert_threshold_minutes = EXCLUDED.alert_threshold_minutes,
			auto_escalation = EXCLUDED.auto_escalation,
			notify_sms = EXCLUDED.notify_sms,
			notify_email = EXCLUDED.notify_email,
			notify_push = EXCLUDED.notify_push,
			team_assignment = EXCLUDED.team_assignment,
			updated_at = NOW();
	`
	_, err := r.db.Exec(ctx, query,
		settings.AlertThresholdMinutes,
		settings.AutoEscalation,
		settings.NotifySMS,
		settings.NotifyEmail,
		settings.NotifyPush,
		settings.TeamAssignment,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettingsFromCache пытается получить настройки из Redis
func (r *SettingsRepository) GetSettingsFromCache(ctx context.Context) (*models.GuestSafetySettings, error) {
	val, err := r.redisClient.Get(ctx, settingsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings from cache: %w", err)
	}

	settings := &models.GuestSafetySettings{}
	if err := json.Unmarshal(val, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings from cache: %w", err)
	}
	return settings, nil
}

// SetSettingsCache сохраняет настройки в Redis
func (r *SettingsRepository) SetSettingsCache(ctx context.Context, settings *models.GuestSafetySettings) error {
	val, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, settingsCacheKey, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set settings in cache: %w", err)
	}
	return nil
}

// InvalidateSettingsCache удаляет настройки из Redis кэша
func (r *SettingsRepository) InvalidateSettingsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, settingsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}
	return nil
}
