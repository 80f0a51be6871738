// Package identity holds the durable account entity and its session model.
// Accounts are created only after an approved risk assessment; this package
// owns them from that point on.
package identity

import (
	"time"

	id "gatekeep/pkg/domain"
)

// Account is the durable identity created on approval. Email doubles as the
// authentication username.
type Account struct {
	ID        id.UserID
	Email     string
	FirstName string
	LastName  string
	Phone     string

	Street1 string
	Street2 string
	City    string
	State   string
	ZipCode string
	Country string

	PasswordHash string
	CreatedAt    time.Time
}

// Profile carries the registration fields the credential store persists
// alongside the authentication identity.
type Profile struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Street1   string
	Street2   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// Session is an authenticated session issued after sign-in or approved
// registration.
type Session struct {
	ID        id.SessionID
	UserID    id.UserID
	Email     string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
