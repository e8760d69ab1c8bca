package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcnielat/bankapp/internal/models"
)

// PostgresAccountStore persists accounts in PostgreSQL (the write store).
// Balances are stored as NUMERIC and scanned straight into decimal.Decimal.
type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (s *PostgresAccountStore) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	query := `
		SELECT account_id, user_name, stored_pin, stored_password, balance
		FROM accounts
		WHERE account_id = $1
	`
	var account models.Account
	err := s.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.AccountID, &account.UserName,
		&account.StoredPin, &account.StoredPassword, &account.Balance,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// SaveAll writes every record inside one transaction. If any update fails
// or matches no row, nothing is committed.
func (s *PostgresAccountStore) SaveAll(ctx context.Context, accounts ...*models.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE accounts
		SET user_name = $2, stored_pin = $3, stored_password = $4, balance = $5
		WHERE account_id = $1
	`
	for _, account := range accounts {
		result, err := tx.ExecContext(ctx, query,
			account.AccountID, account.UserName,
			account.StoredPin, account.StoredPassword, account.Balance,
		)
		if err != nil {
			return fmt.Errorf("failed to save account %d: %w", account.AccountID, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("failed to save account %d: %w", account.AccountID, ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accounts: %w", err)
	}
	return nil
}

func (s *PostgresAccountStore) CreateWithNewID(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (user_name, stored_pin, stored_password, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING account_id
	`
	created := *account
	err := s.db.QueryRowContext(ctx, query,
		account.UserName, account.StoredPin, account.StoredPassword, account.Balance,
	).Scan(&created.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &created, nil
}
