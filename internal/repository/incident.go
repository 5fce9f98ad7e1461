package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
)

// incidentColumns - общий список колонок для выборок инцидентов
const incidentColumns = `
	id,
	title,
	description,
	location,
	room,
	type,
	severity,
	status,
	reported_at,
	assigned_team_id,
	guest_name,
	guest_room,
	source,
	agent_trust_score,
	device_id,
	escalated,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanIncident читает одну строку выборки в модель инцидента
func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Location,
		&incident.Room,
		&incident.Type,
		&incident.Severity,
		&incident.Status,
		&incident.ReportedAt,
		&incident.AssignedTeamID,
		&incident.GuestName,
		&incident.GuestRoom,
		&incident.Source,
		&incident.AgentTrustScore,
		&incident.DeviceID,
		&incident.Escalated,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, title, description, location, room, type, severity, status,
			reported_at, assigned_team_id, guest_name, guest_room, source,
			agent_trust_score, device_id, escalated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ID,
		incident.Title,
		incident.Description,
		incident.Location,
		incident.Room,
		incident.Type,
		incident.Severity,
		incident.Status,
		incident.ReportedAt,
		incident.AssignedTeamID,
		incident.GuestName,
		incident.GuestRoom,
		incident.Source,
		incident.AgentTrustScore,
		incident.DeviceID,
		incident.Escalated,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update сохраняет изменённые поля инцидента
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			title = $1,
			description = $2,
			location = $3,
			room = $4,
			type = $5,
			severity = $6,
			status = $7,
			assigned_team_id = $8,
			escalated = $9,
			updated_at = NOW()
		WHERE id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.Title,
		incident.Description,
		incident.Location,
		incident.Room,
		incident.Type,
		incident.Severity,
		incident.Status,
		incident.AssignedTeamID,
		incident.Escalated,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update", incident.ID)
	}
	return nil
}

// List возвращает инциденты с фильтрами и пагинацией
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + incidentColumns + ` FROM incidents`
	args := []any{}
	where := ""

	appendCond := func(cond string, value any) {
		args = append(args, value)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}

	if filter.Status != "" {
		appendCond("status = $%d", filter.Status)
	}
	if filter.Severity != "" {
		appendCond("severity = $%d", filter.Severity)
	}
	if filter.Type != "" {
		appendCond("type = $%d", filter.Type)
	}

	args = append(args, pageSize, offset)
	query += where + fmt.Sprintf(" ORDER BY reported_at DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// AssignTeam условно назначает группу: только если инцидент ещё в статусе reported.
// Возвращает false, если состояние уже изменилось
func (r *IncidentRepository) AssignTeam(ctx context.Context, incidentID, teamID uuid.UUID) (bool, error) {
	query := `
		UPDATE incidents SET
			status = 'responding',
			assigned_team_id = $2,
			updated_at = NOW()
		WHERE id = $1 AND status = 'reported';
	`
	cmdTag, err := r.db.Exec(ctx, query, incidentID, teamID)
	if err != nil {
		return false, fmt.Errorf("failed to assign team: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Resolve условно переводит инцидент в статус resolved
func (r *IncidentRepository) Resolve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			updated_at = NOW()
		WHERE id = $1 AND status <> 'resolved';
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve incident: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Escalate условно поднимает серьёзность до critical. Условие на escalated
// делает операцию идемпотентной: повторный вызов вернет false без изменений
func (r *IncidentRepository) Escalate(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE incidents SET
			severity = 'critical',
			escalated = TRUE,
			updated_at = NOW()
		WHERE id = $1 AND status = 'reported' AND NOT escalated;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to escalate incident: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ListEscalationCandidates находит необработанные инциденты старше порога
func (r *IncidentRepository) ListEscalationCandidates(ctx context.Context, cutoff time.Time) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE status = 'reported' AND NOT escalated AND reported_at <= $1
		ORDER BY reported_at ASC;
	`
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list escalation candidates: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in ListEscalationCandidates: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListEscalationCandidates: %w", err)
	}
	return incidents, nil
}

// FindReportedSince возвращает инциденты, заявленные не раньше указанного времени
func (r *IncidentRepository) FindReportedSince(ctx context.Context, since time.Time) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE reported_at >= $1
		ORDER BY reported_at DESC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in FindReportedSince: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindReportedSince: %w", err)
	}
	return incidents, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
