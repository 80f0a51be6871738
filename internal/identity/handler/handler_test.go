package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"gatekeep/internal/audit"
	"gatekeep/internal/basket"
	"gatekeep/internal/identity"
	identityService "gatekeep/internal/identity/service"
	sessionStore "gatekeep/internal/identity/store/session"
	userStore "gatekeep/internal/identity/store/user"
	"gatekeep/internal/platform/metrics"
	"gatekeep/internal/session"
	"gatekeep/pkg/testutil"
)

type authFixture struct {
	router  chi.Router
	baskets *basket.MemoryStore
	metrics *metrics.Metrics
	service *identityService.Service
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewWith(prometheus.NewRegistry())
	publisher := audit.NewPublisher(logger)
	baskets := basket.NewMemory()

	service := identityService.New(userStore.NewMemory(), sessionStore.NewMemory(), "test-signing-key")
	bootstrap := session.NewBootstrap(baskets, publisher, m, logger)

	router := chi.NewRouter()
	New(service, bootstrap, publisher, m, logger).Register(router)
	return &authFixture{router: router, baskets: baskets, metrics: m, service: service}
}

func (f *authFixture) createAccount(t *testing.T, email, password string) *identity.Account {
	t.Helper()
	account, err := f.service.CreateAccount(context.Background(), identity.Profile{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}, password)
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return account
}

func TestSignInSucceeds(t *testing.T) {
	f := newAuthFixture(t)
	f.createAccount(t, "ada@example.com", "correct-horse-battery")

	req := testutil.NewJSONRequest(t, http.MethodPost, "/account/signin", SignInRequest{
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	})
	rr := testutil.DoRequest(f.router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[SignInResponse](t, rr)
	if resp.Session.Token == "" {
		t.Fatal("expected session token in response")
	}
	if resp.User.Email != "ada@example.com" {
		t.Fatalf("expected account email in response, got %q", resp.User.Email)
	}
}

func TestSignInMergesAnonymousBasket(t *testing.T) {
	f := newAuthFixture(t)
	account := f.createAccount(t, "ada@example.com", "correct-horse-battery")
	f.baskets.AddAnonymousItem(context.Background(), "anon-3", basket.Item{ProductID: "sku-1", Quantity: 2})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/account/signin", SignInRequest{
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	})
	req.AddCookie(&http.Cookie{Name: session.BasketCookie, Value: "anon-3"})
	rr := testutil.DoRequest(f.router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if f.baskets.HasAnonymous(context.Background(), "anon-3") {
		t.Fatal("expected anonymous basket to be merged on sign-in")
	}
	if items := f.baskets.NamedItems(context.Background(), account.ID.String()); len(items) != 1 {
		t.Fatalf("expected one merged item, got %v", items)
	}
}

func TestSignInFailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.createAccount(t, "ada@example.com", "correct-horse-battery")

	wrongPassword := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/account/signin", SignInRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	}))
	unknownEmail := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/account/signin", SignInRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse-battery",
	}))

	testutil.AssertStatus(t, wrongPassword, http.StatusUnauthorized)
	testutil.AssertStatus(t, unknownEmail, http.StatusUnauthorized)
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatal("wrong password and unknown email must produce identical responses")
	}
	if got := promtestutil.ToFloat64(f.metrics.SignInFailures); got != 2 {
		t.Fatalf("expected 2 sign-in failures counted, got %v", got)
	}
}

func TestSignOutRevokesSessionAndClearsCookie(t *testing.T) {
	f := newAuthFixture(t)
	f.createAccount(t, "ada@example.com", "correct-horse-battery")

	signIn := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/account/signin", SignInRequest{
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	}))
	token := testutil.UnmarshalResponse[SignInResponse](t, signIn).Session.Token

	req := testutil.NewJSONRequest(t, http.MethodPost, "/account/signout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := testutil.DoRequest(f.router, req)

	testutil.AssertStatus(t, rr, http.StatusNoContent)
	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.TokenCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected session cookie to be cleared")
	}
}

func TestSignOutWithoutSessionIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)

	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/account/signout", nil))

	testutil.AssertStatus(t, rr, http.StatusNoContent)
}
