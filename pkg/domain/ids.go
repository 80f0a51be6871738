// Package domain holds identifier types shared across the service. IDs are
// distinct uuid-backed types so the compiler rejects cross-assignment between,
// say, a user and a session identifier.
package domain

import (
	"github.com/google/uuid"

	dErrors "gatekeep/pkg/domain-errors"
)

type (
	// UserID identifies a durable account identity.
	UserID uuid.UUID

	// SessionID identifies an authenticated session.
	SessionID uuid.UUID

	// AssessmentID identifies a single signup risk assessment attempt.
	// Generated fresh per attempt and never reused.
	AssessmentID uuid.UUID
)

func (id UserID) String() string       { return uuid.UUID(id).String() }
func (id SessionID) String() string    { return uuid.UUID(id).String() }
func (id AssessmentID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AssessmentID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// IDs cross JSON boundaries as their canonical string form, not as raw bytes.
func (id UserID) MarshalText() ([]byte, error)       { return []byte(id.String()), nil }
func (id SessionID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id AssessmentID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(text []byte) error {
	u, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id *SessionID) UnmarshalText(text []byte) error {
	u, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = SessionID(u)
	return nil
}

func (id *AssessmentID) UnmarshalText(text []byte) error {
	u, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = AssessmentID(u)
	return nil
}

// NewUserID returns a fresh random user identifier.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewSessionID returns a fresh random session identifier.
func NewSessionID() SessionID { return SessionID(uuid.New()) }

// NewAssessmentID returns a fresh random assessment identifier.
func NewAssessmentID() AssessmentID { return AssessmentID(uuid.New()) }

// ParseUserID parses and validates a user ID at a trust boundary.
// Rejects empty strings, malformed UUIDs, and the nil UUID.
func ParseUserID(s string) (UserID, error) {
	u, err := parse(s)
	return UserID(u), err
}

// ParseSessionID parses and validates a session ID at a trust boundary.
func ParseSessionID(s string) (SessionID, error) {
	u, err := parse(s)
	return SessionID(u), err
}

func parse(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return u, nil
}
