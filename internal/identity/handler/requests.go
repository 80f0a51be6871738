package handler

import (
	"time"

	"gatekeep/internal/identity"
)

// SignInRequest is the HTTP request body for POST /account/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse is the HTTP response for a successful sign-in.
type SignInResponse struct {
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

// FromSession converts the authenticated account and session to the HTTP
// response.
func FromSession(account *identity.Account, sess *identity.Session) *SignInResponse {
	return &SignInResponse{
		User: UserResponse{
			ID:        account.ID.String(),
			Email:     account.Email,
			FirstName: account.FirstName,
			LastName:  account.LastName,
		},
		Session: SessionResponse{
			Token:     sess.Token,
			ExpiresAt: sess.ExpiresAt,
		},
	}
}
