package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
)

const teamRoundRobinKey = "team_round_robin"

type TeamRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewTeamRepository(db *pgxpool.Pool, redisClient *redis.Client) service.TeamRepository {
	return &TeamRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// scanTeam читает одну строку выборки в модель группы
func scanTeam(row rowScanner) (*models.ResponseTeam, error) {
	team := &models.ResponseTeam{}
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Role,
		&team.Status,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return team, nil
}

// List возвращает все группы реагирования
func (r *TeamRepository) List(ctx context.Context) ([]*models.ResponseTeam, error) {
	query := `
		SELECT id, name, role, status, created_at, updated_at
		FROM response_teams
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.ResponseTeam, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return teams, nil
}

// GetByID возвращает группу по её UUID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ResponseTeam, error) {
	query := `
		SELECT id, name, role, status, created_at, updated_at
		FROM response_teams
		WHERE id = $1;
	`
	team, err := scanTeam(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("team with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get team by id: %w", err)
	}
	return team, nil
}

// ListAvailable возвращает группы в статусе available
func (r *TeamRepository) ListAvailable(ctx context.Context) ([]*models.ResponseTeam, error) {
	query := `
		SELECT id, name, role, status, created_at, updated_at
		FROM response_teams
		WHERE status = 'available'
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.ResponseTeam, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team row in ListAvailable: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAvailable: %w", err)
	}
	return teams, nil
}

// SetStatus устанавливает статус группы
func (r *TeamRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE response_teams SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set team status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("team with id %s not found for status update", id)
	}
	return nil
}

// NextRoundRobin продвигает счётчик циклического назначения в Redis
// и возвращает индекс группы в списке доступных
func (r *TeamRepository) NextRoundRobin(ctx context.Context, teamCount int) (int, error) {
	if teamCount <= 0 {
		return 0, fmt.Errorf("team count must be positive")
	}
	counter, err := r.redisClient.Incr(ctx, teamRoundRobinKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance round-robin counter: %w", err)
	}
	return int((counter - 1) % int64(teamCount)), nil
}
