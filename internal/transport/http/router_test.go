package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"gatekeep/internal/audit"
	"gatekeep/internal/basket"
	identityHandler "gatekeep/internal/identity/handler"
	identityService "gatekeep/internal/identity/service"
	sessionStore "gatekeep/internal/identity/store/session"
	userStore "gatekeep/internal/identity/store/user"
	"gatekeep/internal/platform/metrics"
	"gatekeep/internal/registration"
	registrationHandler "gatekeep/internal/registration/handler"
	registrationService "gatekeep/internal/registration/service"
	"gatekeep/internal/risk"
	"gatekeep/internal/session"
)

type noopRisk struct{}

func (noopRisk) SubmitSignupEvent(context.Context, registration.AssessmentEvent) (*risk.Decision, error) {
	return nil, errors.New("not wired in tests")
}

type noopFingerprinter struct{}

func (noopFingerprinter) ComputeFingerprint(string) string { return "" }

type staticCheck struct{ err error }

func (c staticCheck) Health(context.Context) error { return c.err }

func newTestRouter(t *testing.T, checks map[string]HealthChecker) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewWith(prometheus.NewRegistry())
	publisher := audit.NewPublisher(logger)

	credentials := identityService.New(userStore.NewMemory(), sessionStore.NewMemory(), "test-signing-key")
	bootstrap := session.NewBootstrap(basket.NewMemory(), publisher, m, logger)
	orchestrator := registrationService.New(credentials, noopRisk{}, bootstrap, noopFingerprinter{}, publisher, m, logger, 20)

	return NewRouter(Deps{
		Registration: registrationHandler.New(orchestrator, logger),
		Identity:     identityHandler.New(credentials, bootstrap, publisher, m, logger),
		Metrics:      m,
		Logger:       logger,
		Checks:       checks,
	})
}

func TestHealthzReportsOK(t *testing.T) {
	router := newTestRouter(t, map[string]HealthChecker{"redis": staticCheck{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected ok status, got %s", rr.Body.String())
	}
}

func TestHealthzReportsDegradedDependency(t *testing.T) {
	router := newTestRouter(t, map[string]HealthChecker{
		"redis": staticCheck{err: errors.New("connection refused")},
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"degraded"`) {
		t.Fatalf("expected degraded status, got %s", rr.Body.String())
	}
}

func TestRequestIDAssignedAndEchoed(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-7")
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "upstream-7" {
		t.Fatalf("expected inbound request id to be honored, got %q", got)
	}
}

func TestMetricsEndpointServes(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rr.Code)
	}
}

func TestNonJSONBodyRejected(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/account/signin", strings.NewReader("email=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 for form bodies, got %d", rr.Code)
	}
}
