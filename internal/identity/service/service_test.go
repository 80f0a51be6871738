package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"gatekeep/internal/identity"
	sessionStore "gatekeep/internal/identity/store/session"
	userStore "gatekeep/internal/identity/store/user"
	dErrors "gatekeep/pkg/domain-errors"
	"gatekeep/pkg/requestcontext"
)

const testSigningKey = "unit-test-signing-key"

type CredentialServiceSuite struct {
	suite.Suite
	users    *userStore.MemoryStore
	sessions *sessionStore.MemoryStore
	service  *Service
}

func TestCredentialServiceSuite(t *testing.T) {
	suite.Run(t, new(CredentialServiceSuite))
}

func (s *CredentialServiceSuite) SetupTest() {
	s.users = userStore.NewMemory()
	s.sessions = sessionStore.NewMemory()
	s.service = New(s.users, s.sessions, testSigningKey)
}

func testProfile(email string) identity.Profile {
	return identity.Profile{
		Email:     email,
		FirstName: "Grace",
		LastName:  "Hopper",
		Phone:     "+1-555-0100",
		Street1:   "1 Main St",
		City:      "Arlington",
		State:     "VA",
		ZipCode:   "22201",
		Country:   "US",
	}
}

func (s *CredentialServiceSuite) TestCreateAccount() {
	ctx := context.Background()

	s.Run("creates account with hashed password", func() {
		account, err := s.service.CreateAccount(ctx, testProfile("grace@example.com"), "s3cret-pass")
		s.Require().NoError(err)
		s.False(account.ID.IsNil())
		s.NotEqual("s3cret-pass", account.PasswordHash)
		s.NotEmpty(account.PasswordHash)
	})

	s.Run("duplicate email returns conflict with field detail", func() {
		_, err := s.service.CreateAccount(ctx, testProfile("grace@example.com"), "another-pass")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal("already registered", dErrors.FieldsOf(err)["email"])
	})
}

func (s *CredentialServiceSuite) TestValidateCredentials() {
	ctx := context.Background()
	_, err := s.service.CreateAccount(ctx, testProfile("alan@example.com"), "enigma-machine")
	s.Require().NoError(err)

	s.Run("valid credentials return the account", func() {
		account, err := s.service.ValidateCredentials(ctx, "alan@example.com", "enigma-machine")
		s.Require().NoError(err)
		s.Equal("alan@example.com", account.Email)
	})

	s.Run("wrong password is generic unauthorized", func() {
		_, err := s.service.ValidateCredentials(ctx, "alan@example.com", "wrong")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Equal("unauthorized: invalid credentials", err.Error())
	})

	s.Run("unknown email yields the identical error", func() {
		_, err := s.service.ValidateCredentials(ctx, "nobody@example.com", "enigma-machine")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Equal("unauthorized: invalid credentials", err.Error())
	})
}

func (s *CredentialServiceSuite) TestEstablishSession() {
	// Pinned to a real instant so the signed token's exp claim stays valid
	// when parsed back below.
	now := time.Now().Truncate(time.Second)
	ctx := requestcontext.WithTime(context.Background(), now)

	account, err := s.service.CreateAccount(ctx, testProfile("ada@example.com"), "analytical-engine")
	s.Require().NoError(err)

	session, err := s.service.EstablishSession(ctx, account)
	s.Require().NoError(err)

	s.Run("session recorded in the store", func() {
		stored, err := s.sessions.FindByID(ctx, session.ID)
		s.Require().NoError(err)
		s.Equal(account.ID, stored.UserID)
		s.Equal(now.Add(DefaultSessionTTL), stored.ExpiresAt)
	})

	s.Run("token claims bind the session to the account", func() {
		parsed, err := jwt.Parse(session.Token, func(t *jwt.Token) (any, error) {
			return []byte(testSigningKey), nil
		})
		s.Require().NoError(err)
		claims := parsed.Claims.(jwt.MapClaims)
		s.Equal(account.ID.String(), claims["sub"])
		s.Equal(session.ID.String(), claims["sid"])
		s.Equal("ada@example.com", claims["email"])
	})

	s.Run("revoking an unknown session is a no-op", func() {
		s.Require().NoError(s.service.RevokeSession(ctx, session.ID))
		s.Require().NoError(s.service.RevokeSession(ctx, session.ID))
	})
}

func (s *CredentialServiceSuite) TestRevokeToken() {
	now := time.Now().Truncate(time.Second)
	ctx := requestcontext.WithTime(context.Background(), now)

	account, err := s.service.CreateAccount(ctx, testProfile("ada@example.com"), "analytical-engine")
	s.Require().NoError(err)
	session, err := s.service.EstablishSession(ctx, account)
	s.Require().NoError(err)

	s.Run("valid token revokes its session", func() {
		s.Require().NoError(s.service.RevokeToken(ctx, session.Token))

		_, err := s.sessions.FindByID(ctx, session.ID)
		s.ErrorIs(err, sessionStore.ErrNotFound)
	})

	s.Run("garbage token is treated as already signed out", func() {
		s.Require().NoError(s.service.RevokeToken(ctx, "not-a-jwt"))
	})

	s.Run("token signed with another key is rejected silently", func() {
		other := New(s.users, s.sessions, "different-key")
		forged, err := other.EstablishSession(ctx, account)
		s.Require().NoError(err)

		s.Require().NoError(s.service.RevokeToken(ctx, forged.Token))
		_, err = s.sessions.FindByID(ctx, forged.ID)
		s.NoError(err, "session signed by another key must not be revoked here")
	})
}
