// Package handler exposes the registration workflow over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gatekeep/internal/registration"
	"gatekeep/internal/session"
	dErrors "gatekeep/pkg/domain-errors"
	"gatekeep/pkg/platform/httputil"
	"gatekeep/pkg/requestcontext"
)

// Service runs one registration attempt end to end.
type Service interface {
	Register(ctx context.Context, req registration.Request, marker session.Marker) (registration.Outcome, error)
}

// Handler wires the registration endpoint to the orchestrator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/account/register", h.HandleRegister)
}

// HandleRegister handles POST /account/register requests.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.CorrelationID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[registration.Request](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome, err := h.service.Register(ctx, req, session.NewCookieMarker(w, r))
	if err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	switch outcome.Status {
	case registration.OutcomeApproved:
		h.logger.InfoContext(ctx, "registration approved",
			"request_id", requestID,
			"user_id", outcome.Identity.ID.String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		setSessionCookie(w, outcome)
		httputil.WriteJSON(w, http.StatusCreated, FromOutcome(outcome))

	case registration.OutcomeValidationError:
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "registration request is invalid").
			WithFields(outcome.FieldErrors))

	case registration.OutcomeRejected:
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, outcome.Reason))

	case registration.OutcomeAssessmentUnavailable:
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, outcome.Reason))

	case registration.OutcomeCredentialCreationFailed:
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, outcome.Reason).
			WithFields(outcome.FieldErrors))

	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "unknown registration outcome"))
	}
}

func setSessionCookie(w http.ResponseWriter, outcome registration.Outcome) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.TokenCookie,
		Value:    outcome.Session.Token,
		Path:     "/",
		Expires:  outcome.Session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
