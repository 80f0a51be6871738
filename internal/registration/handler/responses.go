package handler

import (
	"time"

	"gatekeep/internal/registration"
)

// RegisterResponse is the HTTP response for an approved registration.
type RegisterResponse struct {
	User    UserResponse    `json:"user"`
	Session SessionResponse `json:"session"`
}

// UserResponse is the account portion of the response.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SessionResponse is the session portion of the response.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FromOutcome converts an approved outcome to the HTTP response.
func FromOutcome(outcome registration.Outcome) *RegisterResponse {
	return &RegisterResponse{
		User: UserResponse{
			ID:        outcome.Identity.ID.String(),
			Email:     outcome.Identity.Email,
			FirstName: outcome.Identity.FirstName,
			LastName:  outcome.Identity.LastName,
		},
		Session: SessionResponse{
			Token:     outcome.Session.Token,
			ExpiresAt: outcome.Session.ExpiresAt,
		},
	}
}
