// Package user provides accounts storage. The memory store backs unit tests
// and development; the postgres store is the production implementation.
package user

import (
	"context"
	"errors"

	"gatekeep/internal/identity"
	id "gatekeep/pkg/domain"
)

// Sentinel errors returned by store implementations. Services translate them
// into domain errors.
var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store persists durable account identities.
type Store interface {
	Create(ctx context.Context, account *identity.Account) error
	FindByID(ctx context.Context, userID id.UserID) (*identity.Account, error)
	FindByEmail(ctx context.Context, email string) (*identity.Account, error)
}
