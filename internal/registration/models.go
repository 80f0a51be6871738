// Package registration defines the data shapes of the fraud-gated
// registration workflow: the submitted request, the assessment event sent to
// the risk service, and the single outcome every attempt resolves to.
package registration

import (
	"time"

	"gatekeep/internal/identity"
	id "gatekeep/pkg/domain"
)

// Address carries the postal address submitted at registration.
type Address struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Request is the user-submitted registration form. Immutable once submitted;
// the orchestrator never mutates it, only derives the assessment event.
type Request struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`

	// DeviceFingerprint is the client-collected fingerprinting token.
	DeviceFingerprint string `json:"device_fingerprint"`

	// TimezoneOffsetMinutes and ClientLocalDate are client-reported clock
	// signals. The client's clock is not trusted: both pass through to the
	// assessment event unmodified as risk signals, never corrected.
	TimezoneOffsetMinutes int    `json:"timezone_offset_minutes"`
	ClientLocalDate       string `json:"client_local_date"`
}

// UserProfile is the identity slice of the assessment event.
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DeviceContext describes the submitting device.
type DeviceContext struct {
	FingerprintToken string `json:"fingerprint_token"`
	Provider         string `json:"provider"`
	DisplayName      string `json:"display_name,omitempty"`
	NormalizedHash   string `json:"normalized_hash,omitempty"`
}

// MarketingContext is static in this deployment; the risk model still expects
// the record to be present.
type MarketingContext struct {
	OptIn   bool   `json:"opt_in"`
	Channel string `json:"channel"`
}

// StorefrontContext identifies the storefront surface the signup came from.
// Static in this deployment.
type StorefrontContext struct {
	StoreID string `json:"store_id"`
	Locale  string `json:"locale"`
}

// AssessmentEvent is the write-once record submitted to the risk service for
// one signup attempt. Built exclusively from the Request plus request context;
// never persisted, alive only for the duration of one assessment call.
type AssessmentEvent struct {
	AssessmentID id.AssessmentID `json:"assessment_id"`

	// SessionID is the server-generated correlation identifier of this
	// attempt, not a storefront session.
	SessionID  string    `json:"session_id"`
	ClientIP   string    `json:"client_ip"`
	ServerTime time.Time `json:"server_time"`

	TimezoneOffsetMinutes int    `json:"timezone_offset_minutes"`
	ClientLocalDate       string `json:"client_local_date"`

	User       UserProfile       `json:"user"`
	Address    Address           `json:"address"`
	Device     DeviceContext     `json:"device"`
	Marketing  MarketingContext  `json:"marketing"`
	Storefront StorefrontContext `json:"storefront"`
}

// OutcomeStatus enumerates the exhaustive registration results.
type OutcomeStatus string

const (
	OutcomeApproved                 OutcomeStatus = "approved"
	OutcomeRejected                 OutcomeStatus = "rejected"
	OutcomeValidationError          OutcomeStatus = "validation_error"
	OutcomeAssessmentUnavailable    OutcomeStatus = "assessment_unavailable"
	OutcomeCredentialCreationFailed OutcomeStatus = "credential_creation_failed"
)

// Outcome is the single result of one registration attempt. Exactly one
// status per call; Identity and Session are set only under OutcomeApproved.
type Outcome struct {
	Status      OutcomeStatus
	Identity    *identity.Account
	Session     *identity.Session
	FieldErrors map[string]string
	Reason      string
}
