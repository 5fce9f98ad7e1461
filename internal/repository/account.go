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

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) service.AccountRepository {
	return &AccountRepository{db: db}
}

// scanAccount читает одну строку выборки в модель учётной записи
func scanAccount(row rowScanner) (*models.StaffAccount, error) {
	account := &models.StaffAccount{}
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Role,
		&account.PasswordHash,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Create создает учётную запись сотрудника
func (r *AccountRepository) Create(ctx context.Context, account *models.StaffAccount) error {
	query := `
		INSERT INTO staff_accounts (id, email, name, role, password_hash, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		account.ID,
		account.Email,
		account.Name,
		account.Role,
		account.PasswordHash,
		account.Active,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create staff account: %w", err)
	}
	return nil
}

// GetByID возвращает учётную запись по её UUID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.StaffAccount, error) {
	query := `
		SELECT id, email, name, role, password_hash, active, created_at, updated_at
		FROM staff_accounts
		WHERE id = $1;
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

// GetByEmail возвращает учётную запись по email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	query := `
		SELECT id, email, name, role, password_hash, active, created_at, updated_at
		FROM staff_accounts
		WHERE email = $1;
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

// Update сохраняет имя и роль сотрудника
func (r *AccountRepository) Update(ctx context.Context, account *models.StaffAccount) error {
	query := `
		UPDATE staff_accounts SET
			name = $1,
			role = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, account.Name, account.Role, account.ID)
	if err != nil {
		return fmt.Errorf("failed to update staff account: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account with id %s not found for update", account.ID)
	}
	return nil
}

// Deactivate отключает учётную запись, не удаляя её
func (r *AccountRepository) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE staff_accounts SET
			active = FALSE,
			updated_at = NOW()
		WHERE id = $1 AND active;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate staff account: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// List возвращает все учётные записи
func (r *AccountRepository) List(ctx context.Context) ([]*models.StaffAccount, error) {
	query := `
		SELECT id, email, name, role, password_hash, active, created_at, updated_at
		FROM staff_accounts
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.StaffAccount, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return accounts, nil
}
