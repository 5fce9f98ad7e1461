package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
)

type SensorRepository struct {
	db *pgxpool.Pool
}

func NewSensorRepository(db *pgxpool.Pool) service.SensorRepository {
	return &SensorRepository{db: db}
}

// scanSensor читает одну строку выборки в модель датчика
func scanSensor(row rowScanner) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	err := row.Scan(
		&sensor.ID,
		&sensor.Name,
		&sensor.Kind,
		&sensor.Location,
		&sensor.Status,
		&sensor.Battery,
		&sensor.LastSeen,
		&sensor.CreatedAt,
		&sensor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sensor, nil
}

// Create регистрирует новый датчик
func (r *SensorRepository) Create(ctx context.Context, sensor *models.Sensor) error {
	query := `
		INSERT INTO sensors (id, name, kind, location, status, battery, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING last_seen, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		sensor.ID,
		sensor.Name,
		sensor.Kind,
		sensor.Location,
		sensor.Status,
		sensor.Battery,
	).Scan(&sensor.LastSeen, &sensor.CreatedAt, &sensor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sensor: %w", err)
	}
	return nil
}

// GetByID возвращает датчик по его UUID
func (r *SensorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	query := `
		SELECT id, name, kind, location, status, battery, last_seen, created_at, updated_at
		FROM sensors
		WHERE id = $1;
	`
	sensor, err := scanSensor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sensor with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get sensor by id: %w", err)
	}
	return sensor, nil
}

// Update сохраняет состояние датчика
func (r *SensorRepository) Update(ctx context.Context, sensor *models.Sensor) error {
	query := `
		UPDATE sensors SET
			name = $1,
			kind = $2,
			location = $3,
			status = $4,
			battery = $5,
			last_seen = $6,
			updated_at = NOW()
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		sensor.Name,
		sensor.Kind,
		sensor.Location,
		sensor.Status,
		sensor.Battery,
		sensor.LastSeen,
		sensor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sensor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sensor with id %s not found for update", sensor.ID)
	}
	return nil
}

// Delete удаляет датчик
func (r *SensorRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM sensors WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete sensor: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// List возвращает все датчики объекта
func (r *SensorRepository) List(ctx context.Context) ([]*models.Sensor, error) {
	query := `
		SELECT id, name, kind, location, status, battery, last_seen, created_at, updated_at
		FROM sensors
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}
	defer rows.Close()

	sensors := make([]*models.Sensor, 0)
	for rows.Next() {
		sensor, err := scanSensor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor row: %w", err)
		}
		sensors = append(sensors, sensor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return sensors, nil
}

// CreateAlert создает тревогу датчика
func (r *SensorRepository) CreateAlert(ctx context.Context, alert *models.SensorAlert) error {
	query := `
		INSERT INTO sensor_alerts (id, sensor_id, level, message, acknowledged)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.ID,
		alert.SensorID,
		alert.Level,
		alert.Message,
	).Scan(&alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sensor alert: %w", err)
	}
	return nil
}

// ListAlerts возвращает тревоги датчиков, опционально только неподтверждённые
func (r *SensorRepository) ListAlerts(ctx context.Context, unackedOnly bool) ([]*models.SensorAlert, error) {
	query := `
		SELECT id, sensor_id, level, message, acknowledged, created_at
		FROM sensor_alerts
	`
	if unackedOnly {
		query += ` WHERE NOT acknowledged`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensor alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.SensorAlert, 0)
	for rows.Next() {
		alert := &models.SensorAlert{}
		err := rows.Scan(
			&alert.ID,
			&alert.SensorID,
			&alert.Level,
			&alert.Message,
			&alert.Acknowledged,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// AcknowledgeAlert подтверждает тревогу. Возвращает false, если тревоги нет
func (r *SensorRepository) AcknowledgeAlert(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE sensor_alerts SET
			acknowledged = TRUE
		WHERE id = $1 AND NOT acknowledged;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
