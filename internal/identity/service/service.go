// Package service implements the credential store: account creation,
// credential validation, and session issuance. The registration orchestrator
// and the sign-in flow consume it through narrow interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gatekeep/internal/identity"
	"gatekeep/internal/identity/secrets"
	sessionStore "gatekeep/internal/identity/store/session"
	userStore "gatekeep/internal/identity/store/user"
	id "gatekeep/pkg/domain"
	dErrors "gatekeep/pkg/domain-errors"
	"gatekeep/pkg/requestcontext"
)

// DefaultSessionTTL bounds issued sessions; storefront sessions are short by
// policy, refresh is a sign-in.
const DefaultSessionTTL = 24 * time.Hour

type Service struct {
	users      userStore.Store
	sessions   sessionStore.Store
	signingKey []byte
	sessionTTL time.Duration
}

func New(users userStore.Store, sessions sessionStore.Store, signingKey string) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		signingKey: []byte(signingKey),
		sessionTTL: DefaultSessionTTL,
	}
}

// CreateAccount persists a new account with a hashed password. A duplicate
// email surfaces as CodeConflict with field detail so the caller can report
// it without retrying the risk assessment.
func (s *Service) CreateAccount(ctx context.Context, profile identity.Profile, password string) (*identity.Account, error) {
	hash, err := secrets.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &identity.Account{
		ID:           id.NewUserID(),
		Email:        profile.Email,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Phone:        profile.Phone,
		Street1:      profile.Street1,
		Street2:      profile.Street2,
		City:         profile.City,
		State:        profile.State,
		ZipCode:      profile.ZipCode,
		Country:      profile.Country,
		PasswordHash: hash,
		CreatedAt:    requestcontext.Now(ctx),
	}

	if err := s.users.Create(ctx, account); err != nil {
		if errors.Is(err, userStore.ErrDuplicateEmail) {
			return nil, dErrors.New(dErrors.CodeConflict, "account could not be created").
				WithFields(map[string]string{"email": "already registered"})
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create account")
	}

	return account, nil
}

// ValidateCredentials authenticates an email/password pair. Any mismatch
// (unknown email or wrong password) returns the same CodeUnauthorized error
// so responses never reveal which half failed.
func (s *Service) ValidateCredentials(ctx context.Context, email, password string) (*identity.Account, error) {
	invalid := dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")

	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userStore.ErrNotFound) {
			return nil, invalid
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up account")
	}

	if err := secrets.Verify(password, account.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, invalid
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify credentials")
	}

	return account, nil
}

// EstablishSession mints a signed session token and records the session.
func (s *Service) EstablishSession(ctx context.Context, account *identity.Account) (*identity.Session, error) {
	now := requestcontext.Now(ctx)
	sessionID := id.NewSessionID()
	expiresAt := now.Add(s.sessionTTL)

	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"sid":   sessionID.String(),
		"email": account.Email,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign session token")
	}

	session := &identity.Session{
		ID:        sessionID,
		UserID:    account.ID,
		Email:     account.Email,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}

	return session, nil
}

// RevokeToken parses a session token and revokes the session it names.
// Invalid or expired tokens are treated as already signed out; sign-out is
// idempotent from the client's point of view.
func (s *Service) RevokeToken(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	sid, _ := claims["sid"].(string)
	sessionID, err := id.ParseSessionID(sid)
	if err != nil {
		return nil
	}
	return s.RevokeSession(ctx, sessionID)
}

// RevokeSession drops a session; unknown sessions are treated as already
// signed out.
func (s *Service) RevokeSession(ctx context.Context, sessionID id.SessionID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, sessionStore.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke session")
	}
	return nil
}
