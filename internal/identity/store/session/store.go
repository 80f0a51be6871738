// Package session stores issued sessions so sign-out and admin tooling can
// revoke them.
package session

import (
	"context"
	"errors"

	"gatekeep/internal/identity"
	id "gatekeep/pkg/domain"
)

var ErrNotFound = errors.New("session not found")

// Store persists authenticated sessions.
type Store interface {
	Save(ctx context.Context, session *identity.Session) error
	FindByID(ctx context.Context, sessionID id.SessionID) (*identity.Session, error)
	Delete(ctx context.Context, sessionID id.SessionID) error
}
