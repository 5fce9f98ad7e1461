package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/service"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) service.MessageRepository {
	return &MessageRepository{db: db}
}

// scanMessage читает одну строку выборки в модель сообщения
func scanMessage(row rowScanner) (*models.GuestMessage, error) {
	message := &models.GuestMessage{}
	err := row.Scan(
		&message.ID,
		&message.IncidentID,
		&message.GuestName,
		&message.GuestRoom,
		&message.Text,
		&message.Type,
		&message.Direction,
		&message.Channel,
		&message.Read,
		&message.ReadAt,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}

// Create создает новое гостевое сообщение
func (r *MessageRepository) Create(ctx context.Context, message *models.GuestMessage) error {
	query := `
		INSERT INTO guest_messages (
			id, incident_id, guest_name, guest_room, text, type, direction, channel
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		message.ID,
		message.IncidentID,
		message.GuestName,
		message.GuestRoom,
		message.Text,
		message.Type,
		message.Direction,
		message.Channel,
	).Scan(&message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create guest message: %w", err)
	}
	return nil
}

// GetByID возвращает сообщение по его UUID
func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GuestMessage, error) {
	query := `
		SELECT id, incident_id, guest_name, guest_room, text, type, direction,
			channel, read, read_at, created_at
		FROM guest_messages
		WHERE id = $1;
	`
	message, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("message with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get message by id: %w", err)
	}
	return message, nil
}

// List возвращает сообщения с пагинацией, опционально только непрочитанные
func (r *MessageRepository) List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]*models.GuestMessage, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, incident_id, guest_name, guest_room, text, type, direction,
			channel, read, read_at, created_at
		FROM guest_messages
	`
	if unreadOnly {
		query += ` WHERE NOT read`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.GuestMessage, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return messages, nil
}

// MarkRead помечает сообщение прочитанным. Возвращает false, если оно уже было прочитано
func (r *MessageRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error) {
	query := `
		UPDATE guest_messages SET
			read = TRUE,
			read_at = $2
		WHERE id = $1 AND NOT read;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, readAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark message as read: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
