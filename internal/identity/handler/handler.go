// Package handler exposes sign-in and sign-out over HTTP. The sign-in flow is
// deliberately thin: no risk assessment, one generic failure answer.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gatekeep/internal/audit"
	"gatekeep/internal/identity"
	"gatekeep/internal/platform/metrics"
	"gatekeep/internal/session"
	dErrors "gatekeep/pkg/domain-errors"
	"gatekeep/pkg/platform/httputil"
	"gatekeep/pkg/requestcontext"
)

// Service is the credential store slice the auth endpoints need.
type Service interface {
	ValidateCredentials(ctx context.Context, email, password string) (*identity.Account, error)
	EstablishSession(ctx context.Context, account *identity.Account) (*identity.Session, error)
	RevokeToken(ctx context.Context, token string) error
}

// Bootstrapper runs post-authentication steps (basket reconciliation).
type Bootstrapper interface {
	OnAuthenticated(ctx context.Context, identityKey string, marker session.Marker)
}

type Handler struct {
	service   Service
	bootstrap Bootstrapper
	audit     *audit.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func New(service Service, bootstrap Bootstrapper, auditor *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		bootstrap: bootstrap,
		audit:     auditor,
		metrics:   m,
		logger:    logger,
	}
}

// Register mounts auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/account/signin", h.HandleSignIn)
	r.Post("/account/signout", h.HandleSignOut)
}

// HandleSignIn handles POST /account/signin requests. Every credential
// failure, unknown email or wrong password alike, produces the same
// unauthorized response.
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.CorrelationID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SignInRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	account, err := h.service.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			h.metrics.SignInFailures.Inc()
			h.audit.Emit(ctx, audit.ActionSignInFailed, "email", req.Email)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "sign-in failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	sess, err := h.service.EstablishSession(ctx, account)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to establish session",
			"request_id", requestID,
			"user_id", account.ID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.bootstrap.OnAuthenticated(ctx, account.ID.String(), session.NewCookieMarker(w, r))

	h.audit.Emit(ctx, audit.ActionSignInSucceeded,
		"user_id", account.ID.String(),
		"email", account.Email,
	)
	h.logger.InfoContext(ctx, "sign-in succeeded",
		"request_id", requestID,
		"user_id", account.ID.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     session.TokenCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, FromSession(account, sess))
}

// HandleSignOut handles POST /account/signout requests. Sign-out is
// idempotent: missing or invalid tokens still clear the cookie and return
// success.
func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token := sessionToken(r); token != "" {
		if err := h.service.RevokeToken(ctx, token); err != nil {
			h.logger.ErrorContext(ctx, "failed to revoke session",
				"request_id", requestcontext.CorrelationID(ctx),
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// sessionToken extracts the session token from the Authorization header or
// the session cookie, in that order.
func sessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie(session.TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
