// Package device derives stable device context from client signals. The
// display name and normalized fingerprint feed the signup assessment event's
// device record; they are risk signals, never identifiers.
package device

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mssola/useragent"
)

// Service computes device fingerprints from user-agent strings. When disabled
// it returns empty fingerprints so callers degrade gracefully.
type Service struct {
	enabled bool
}

func NewService(enabled bool) *Service {
	return &Service{enabled: enabled}
}

// ParseUserAgent produces a human-readable device display name like
// "Chrome on Mac OS X".
func ParseUserAgent(ua string) string {
	if ua == "" {
		return "Unknown Device"
	}

	parsed := useragent.New(ua)
	browser, _ := parsed.Browser()
	os := parsed.OSInfo().Name

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + os)
}

// ComputeFingerprint hashes a normalized form of the user agent. Browser minor
// and patch versions are dropped so routine updates do not churn the
// fingerprint, while major version bumps do.
func (s *Service) ComputeFingerprint(ua string) string {
	if !s.enabled {
		return ""
	}

	parsed := useragent.New(ua)
	browser, version := parsed.Browser()
	major := version
	if idx := strings.Index(version, "."); idx != -1 {
		major = version[:idx]
	}

	normalized := strings.Join([]string{
		browser,
		major,
		parsed.OSInfo().Name,
		parsed.Platform(),
	}, "|")

	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// CompareFingerprints reports whether two fingerprints match and whether the
// mismatch counts as drift.
func (s *Service) CompareFingerprints(stored, current string) (matched, drift bool) {
	if stored == current {
		return true, false
	}
	return false, true
}
