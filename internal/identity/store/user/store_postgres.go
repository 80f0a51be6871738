package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"gatekeep/internal/identity"
	id "gatekeep/pkg/domain"
)

// uniqueViolation is the postgres error code raised by the users_email_key
// constraint.
const uniqueViolation = "23505"

// PostgresStore persists accounts in the users table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, account *identity.Account) error {
	query := `
		INSERT INTO users (
			id, email, first_name, last_name, phone,
			street1, street2, city, state, zip_code, country,
			password_hash, created_at
		) VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ID.String(), account.Email, account.FirstName, account.LastName, account.Phone,
		account.Street1, account.Street2, account.City, account.State, account.ZipCode, account.Country,
		account.PasswordHash, account.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*identity.Account, error) {
	return s.findOne(ctx, `WHERE id = $1`, userID.String())
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	return s.findOne(ctx, `WHERE email = lower($1)`, email)
}

func (s *PostgresStore) findOne(ctx context.Context, where string, arg any) (*identity.Account, error) {
	query := `
		SELECT id, email, first_name, last_name, phone,
		       street1, street2, city, state, zip_code, country,
		       password_hash, created_at
		FROM users ` + where

	var account identity.Account
	var rawID string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&rawID, &account.Email, &account.FirstName, &account.LastName, &account.Phone,
		&account.Street1, &account.Street2, &account.City, &account.State, &account.ZipCode, &account.Country,
		&account.PasswordHash, &account.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	parsed, err := id.ParseUserID(rawID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user id %q: %w", rawID, err)
	}
	account.ID = parsed
	return &account, nil
}
