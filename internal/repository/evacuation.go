package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
)

type EvacuationRepository struct {
	db *pgxpool.Pool
}

func NewEvacuationRepository(db *pgxpool.Pool) service.EvacuationRepository {
	return &EvacuationRepository{db: db}
}

// ListCheckIns возвращает все отметки гостей
func (r *EvacuationRepository) ListCheckIns(ctx context.Context) ([]*models.EvacuationCheckIn, error) {
	query := `
		SELECT id, guest_name, room, status, updated_at, created_at
		FROM evacuation_check_ins
		ORDER BY room;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := make([]*models.EvacuationCheckIn, 0)
	for rows.Next() {
		checkIn := &models.EvacuationCheckIn{}
		err := rows.Scan(
			&checkIn.ID,
			&checkIn.GuestName,
			&checkIn.Room,
			&checkIn.Status,
			&checkIn.UpdatedAt,
			&checkIn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checkIns, nil
}

// UpdateCheckInStatus меняет статус отметки гостя
func (r *EvacuationRepository) UpdateCheckInStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	query := `
		UPDATE evacuation_check_ins SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update check-in status: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Headcount считает агрегаты по статусам отметок одним запросом
func (r *EvacuationRepository) Headcount(ctx context.Context) (*models.EvacuationHeadcount, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'safe'),
			COUNT(*) FILTER (WHERE status = 'unaccounted'),
			COUNT(*) FILTER (WHERE status = 'in_progress')
		FROM evacuation_check_ins;
	`
	headcount := &models.EvacuationHeadcount{}
	err := r.db.QueryRow(ctx, query).Scan(
		&headcount.Total,
		&headcount.Safe,
		&headcount.Unaccounted,
		&headcount.InProgress,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get headcount: %w", err)
	}
	return headcount, nil
}
