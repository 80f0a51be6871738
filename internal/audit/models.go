// Package audit captures the security-relevant outcomes of registration and
// sign-in. Events are emitted fire-and-forget from domain services and carried
// by a background worker to the configured sink, so the authentication path
// never blocks on audit delivery.
package audit

import "time"

// Action names an auditable outcome.
type Action string

const (
	ActionRegistrationApproved      Action = "registration_approved"
	ActionRegistrationRejected      Action = "registration_rejected"
	ActionAssessmentUnavailable     Action = "assessment_unavailable"
	ActionCredentialCreationFailed  Action = "credential_creation_failed"
	ActionSignInSucceeded           Action = "signin_succeeded"
	ActionSignInFailed              Action = "signin_failed"
	ActionBasketMerged              Action = "basket_merged"
	ActionBasketMergeFailed         Action = "basket_merge_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	Action        Action    `json:"action"`
	UserID        string    `json:"user_id,omitempty"`
	Email         string    `json:"email,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}
