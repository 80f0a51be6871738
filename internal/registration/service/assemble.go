package service

import (
	"context"

	"gatekeep/internal/device"
	"gatekeep/internal/registration"
	id "gatekeep/pkg/domain"
	"gatekeep/pkg/requestcontext"
)

const fingerprintProvider = "client-fingerprint"

// This deployment runs a single web storefront with no marketing capture at
// signup, but the risk model scores the full event shape, so the static
// records are still sent.
var (
	defaultMarketing  = registration.MarketingContext{OptIn: false, Channel: "none"}
	defaultStorefront = registration.StorefrontContext{StoreID: "web", Locale: "en-US"}
)

// assembleEvent builds the write-once assessment event for this attempt.
// Every call mints a fresh assessment id, so retries of the same form are
// scored as distinct attempts. Client-reported clock fields pass through
// untouched; the server clock and client IP come from the request context.
func (s *Service) assembleEvent(ctx context.Context, req registration.Request) registration.AssessmentEvent {
	ua := requestcontext.UserAgent(ctx)

	return registration.AssessmentEvent{
		AssessmentID: id.NewAssessmentID(),
		SessionID:    requestcontext.CorrelationID(ctx),
		ClientIP:     requestcontext.ClientIP(ctx),
		ServerTime:   requestcontext.Now(ctx),

		TimezoneOffsetMinutes: req.TimezoneOffsetMinutes,
		ClientLocalDate:       req.ClientLocalDate,

		User: registration.UserProfile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		},
		Address: req.Address,
		Device: registration.DeviceContext{
			FingerprintToken: req.DeviceFingerprint,
			Provider:         fingerprintProvider,
			DisplayName:      device.ParseUserAgent(ua),
			NormalizedHash:   s.devices.ComputeFingerprint(ua),
		},
		Marketing:  defaultMarketing,
		Storefront: defaultStorefront,
	}
}
