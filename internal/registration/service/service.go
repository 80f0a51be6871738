// Package service orchestrates fraud-gated registration: validate the
// submitted form, score it with the risk service, and only then create the
// credential and establish the session. The gate is strict: no account
// exists until a fresh risk decision approved this exact attempt.
package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gatekeep/internal/audit"
	"gatekeep/internal/identity"
	"gatekeep/internal/platform/metrics"
	"gatekeep/internal/registration"
	"gatekeep/internal/risk"
	"gatekeep/internal/session"
	dErrors "gatekeep/pkg/domain-errors"
)

// CredentialStore is the slice of the identity service the orchestrator
// needs: create the account, then mint its first session.
type CredentialStore interface {
	CreateAccount(ctx context.Context, profile identity.Profile, password string) (*identity.Account, error)
	EstablishSession(ctx context.Context, account *identity.Account) (*identity.Session, error)
}

// Bootstrapper runs the post-authentication steps (basket reconciliation).
// Failures inside it never surface here.
type Bootstrapper interface {
	OnAuthenticated(ctx context.Context, identityKey string, marker session.Marker)
}

// DeviceProfiler enriches the assessment event with device context derived
// from the request's user agent.
type DeviceProfiler interface {
	ComputeFingerprint(ua string) string
}

type Service struct {
	credentials CredentialStore
	risk        risk.Client
	bootstrap   Bootstrapper
	devices     DeviceProfiler
	audit       *audit.Publisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	threshold   float64
	tracer      trace.Tracer
}

func New(
	credentials CredentialStore,
	riskClient risk.Client,
	bootstrap Bootstrapper,
	devices DeviceProfiler,
	auditor *audit.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	threshold float64,
) *Service {
	return &Service{
		credentials: credentials,
		risk:        riskClient,
		bootstrap:   bootstrap,
		devices:     devices,
		audit:       auditor,
		metrics:     m,
		logger:      logger,
		threshold:   threshold,
		tracer:      otel.Tracer("gatekeep/registration"),
	}
}

// Register runs one registration attempt end to end and resolves it to
// exactly one outcome. The returned error is reserved for unexpected
// internal failures; every expected result, including rejection and an
// unreachable risk service, is an Outcome variant.
func (s *Service) Register(ctx context.Context, req registration.Request, marker session.Marker) (registration.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Register")
	defer span.End()

	if fieldErrors := registration.Validate(req); fieldErrors != nil {
		span.SetAttributes(attribute.String("registration.outcome", string(registration.OutcomeValidationError)))
		return registration.Outcome{
			Status:      registration.OutcomeValidationError,
			FieldErrors: fieldErrors,
		}, nil
	}

	event := s.assembleEvent(ctx, req)
	span.SetAttributes(attribute.String("registration.assessment_id", event.AssessmentID.String()))

	decision, err := s.risk.SubmitSignupEvent(ctx, event)
	if err != nil || decision == nil || decision.Score == nil || math.IsNaN(*decision.Score) {
		return s.assessmentUnavailable(ctx, span, req, err), nil
	}

	score := *decision.Score
	span.SetAttributes(attribute.Float64("registration.risk_score", score))
	if score > s.threshold {
		s.metrics.RegistrationsRejected.Inc()
		s.logger.InfoContext(ctx, "registration rejected by risk policy",
			"assessment_id", event.AssessmentID.String(),
			"score", score,
		)
		s.audit.Emit(ctx, audit.ActionRegistrationRejected,
			"email", req.Email,
			"reason", "risk score above threshold",
		)
		span.SetAttributes(attribute.String("registration.outcome", string(registration.OutcomeRejected)))
		return registration.Outcome{
			Status: registration.OutcomeRejected,
			Reason: "registration declined",
		}, nil
	}

	account, err := s.credentials.CreateAccount(ctx, profileOf(req), req.Password)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			s.audit.Emit(ctx, audit.ActionCredentialCreationFailed,
				"email", req.Email,
				"reason", "duplicate email",
			)
			span.SetAttributes(attribute.String("registration.outcome", string(registration.OutcomeCredentialCreationFailed)))
			return registration.Outcome{
				Status:      registration.OutcomeCredentialCreationFailed,
				FieldErrors: dErrors.FieldsOf(err),
				Reason:      "account could not be created",
			}, nil
		}
		return registration.Outcome{}, err
	}

	sess, err := s.credentials.EstablishSession(ctx, account)
	if err != nil {
		// The account exists but the customer holds no session; sign-in
		// recovers from here, so this is not rolled back.
		return registration.Outcome{}, err
	}

	s.bootstrap.OnAuthenticated(ctx, account.ID.String(), marker)

	s.metrics.RegistrationsApproved.Inc()
	s.audit.Emit(ctx, audit.ActionRegistrationApproved,
		"user_id", account.ID.String(),
		"email", account.Email,
	)
	span.SetAttributes(attribute.String("registration.outcome", string(registration.OutcomeApproved)))
	return registration.Outcome{
		Status:   registration.OutcomeApproved,
		Identity: account,
		Session:  sess,
	}, nil
}

func (s *Service) assessmentUnavailable(ctx context.Context, span trace.Span, req registration.Request, cause error) registration.Outcome {
	if cause == nil {
		cause = errors.New("assessment response carried no usable score")
	}
	s.metrics.AssessmentsUnavailable.Inc()
	s.logger.ErrorContext(ctx, "risk assessment unavailable", "error", cause)
	s.audit.Emit(ctx, audit.ActionAssessmentUnavailable,
		"email", req.Email,
		"reason", cause.Error(),
	)
	span.SetAttributes(attribute.String("registration.outcome", string(registration.OutcomeAssessmentUnavailable)))
	return registration.Outcome{
		Status: registration.OutcomeAssessmentUnavailable,
		Reason: "registration is temporarily unavailable",
	}
}

func profileOf(req registration.Request) identity.Profile {
	return identity.Profile{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Street1:   req.Address.Street1,
		Street2:   req.Address.Street2,
		City:      req.Address.City,
		State:     req.Address.State,
		ZipCode:   req.Address.ZipCode,
		Country:   req.Address.Country,
	}
}
