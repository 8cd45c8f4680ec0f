package goAuthClient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MrEthical07/goAuthClient/session"
)

type countingHandler struct {
	requests atomic.Int64
	inner    http.Handler
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.requests.Add(1)
	h.inner.ServeHTTP(w, r)
}

func (h *countingHandler) Count() int64 {
	return h.requests.Load()
}

func newCountingServer(t *testing.T, inner http.Handler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(inner)
	t.Cleanup(srv.Close)
	return srv
}

func newFlowClient(t *testing.T, inner http.Handler) (*Client, *countingHandler) {
	t.Helper()

	counter := &countingHandler{inner: inner}
	srv := httptest.NewServer(counter)
	t.Cleanup(srv.Close)

	client, err := New().
		WithBaseURL(srv.URL + "/api/auth").
		WithTokenStore(session.NewMemoryTokenStore()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client, counter
}

func jsonStatus(status int, body any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	})
}

func TestSubmitRegistrationValidationAbortIssuesNoRequest(t *testing.T) {
	client, counter := newFlowClient(t, jsonStatus(http.StatusCreated, nil))

	res, err := client.SubmitRegistration(context.Background(), RegistrationProfile{
		Username: "ab",
		Password: "short",
		Email:    "bad",
		Phone:    "123",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if res.Navigate != RouteNone {
		t.Fatalf("expected no navigation, got %q", res.Navigate)
	}

	want := FieldErrors{
		FieldUsername: "Username must be at least 3 characters long and no spaces.",
		FieldPassword: "Password must be at least 8 characters with 1 uppercase and 1 number.",
		FieldEmail:    "Please enter a valid email address.",
		FieldPhone:    "Phone number must be exactly 10 digits.",
	}
	for field, wantMsg := range want {
		if got := res.Fields[field]; got != wantMsg {
			t.Fatalf("field %q: got %q, want %q", field, got, wantMsg)
		}
	}

	if n := counter.Count(); n != 0 {
		t.Fatalf("expected 0 requests, observed %d", n)
	}
	if client.Session().IsLoading() {
		t.Fatal("loading flag set after validation abort")
	}
}

func TestSubmitRegistrationSuccessNavigatesToLogin(t *testing.T) {
	client, counter := newFlowClient(t, jsonStatus(http.StatusCreated, map[string]string{"message": "User registered successfully"}))

	res, err := client.SubmitRegistration(context.Background(), RegistrationProfile{
		Username: "validuser",
		Password: "Password1",
		Email:    "a@b.com",
		Phone:    "1234567890",
	})
	if err != nil {
		t.Fatalf("SubmitRegistration failed: %v", err)
	}
	if res.Navigate != RouteLogin {
		t.Fatalf("expected navigation to %q, got %q", RouteLogin, res.Navigate)
	}
	if res.Fields.HasErrors() {
		t.Fatalf("unexpected field errors: %v", res.Fields)
	}
	if n := counter.Count(); n != 1 {
		t.Fatalf("expected 1 request, observed %d", n)
	}
}

func TestSubmitRegistrationServerErrorMessage(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusBadRequest, map[string]string{"error": "Username already exists"}))

	res, err := client.SubmitRegistration(context.Background(), RegistrationProfile{
		Username: "validuser",
		Password: "Password1",
		Email:    "a@b.com",
		Phone:    "1234567890",
	})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if res.Message != "Username already exists" {
		t.Fatalf("got message %q", res.Message)
	}
	if res.Navigate != RouteNone {
		t.Fatalf("expected no navigation, got %q", res.Navigate)
	}
	if client.Session().IsLoading() {
		t.Fatal("loading flag still set after failure")
	}
}

func TestSubmitRegistrationFallbackMessage(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusInternalServerError, nil))

	res, err := client.SubmitRegistration(context.Background(), RegistrationProfile{
		Username: "validuser",
		Password: "Password1",
		Email:    "a@b.com",
		Phone:    "1234567890",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if res.Message != "Registration failed" {
		t.Fatalf("got message %q, want fallback", res.Message)
	}
}

func TestSubmitLoginSuccessCommitsTokenAndNavigates(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusOK, map[string]string{"token": "abc"}))

	res, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"})
	if err != nil {
		t.Fatalf("SubmitLogin failed: %v", err)
	}
	if res.Navigate != RouteDashboard {
		t.Fatalf("expected navigation to %q, got %q", RouteDashboard, res.Navigate)
	}

	token, ok := client.Session().Token()
	if !ok || token != "abc" {
		t.Fatalf("session token = %q, %v; want \"abc\", true", token, ok)
	}
	if client.Session().IsLoading() {
		t.Fatal("loading flag still set after success")
	}
}

func TestSubmitLoginInvalidCredentials(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"}))

	res, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if res.Message != "Invalid credentials" {
		t.Fatalf("got message %q", res.Message)
	}
	if res.Navigate != RouteNone {
		t.Fatalf("expected no navigation, got %q", res.Navigate)
	}

	sess := client.Session()
	if sess.IsLoading() {
		t.Fatal("loading flag still set after failure")
	}
	if _, ok := sess.Token(); ok {
		t.Fatal("token committed on failed login")
	}
	if sess.Error() != "Invalid credentials" {
		t.Fatalf("session error = %q", sess.Error())
	}
}

func TestSubmitLoginTransportFailureFallback(t *testing.T) {
	srv := httptest.NewServer(jsonStatus(http.StatusOK, nil))
	client, err := New().
		WithBaseURL(srv.URL + "/api/auth").
		WithTokenStore(session.NewMemoryTokenStore()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)
	srv.Close() // every subsequent request fails at the transport

	res, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"})
	if err == nil {
		t.Fatal("expected error")
	}
	if res.Message != "Login failed" {
		t.Fatalf("got message %q, want fallback", res.Message)
	}
}

func TestSubmitLoginMissingTokenInBody(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusOK, map[string]string{}))

	_, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if _, ok := client.Session().Token(); ok {
		t.Fatal("token committed from empty body")
	}
}

func TestResubmissionWhileLoadingIsNoOp(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
	})
	client, counter := newFlowClient(t, handler)

	first := make(chan error, 1)
	go func() {
		_, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"})
		first <- err
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first request never reached the server")
	}

	_, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"})
	if !errors.Is(err, ErrRequestInFlight) {
		t.Fatalf("expected ErrRequestInFlight, got %v", err)
	}

	close(release)
	if err := <-first; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	if n := counter.Count(); n != 1 {
		t.Fatalf("observed %d requests, want 1", n)
	}
}

func TestLogoutClearsSessionAndNavigates(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusOK, map[string]string{"token": "abc"}))

	if _, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	res, err := client.Logout(context.Background())
	if err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if res.Navigate != RouteLogin {
		t.Fatalf("expected navigation to %q, got %q", RouteLogin, res.Navigate)
	}
	if _, ok := client.Session().Token(); ok {
		t.Fatal("token survived logout")
	}

	// Logout is idempotent.
	if _, err := client.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}
}

func TestFlowMetrics(t *testing.T) {
	client, _ := newFlowClient(t, jsonStatus(http.StatusOK, map[string]string{"token": "abc"}))

	if _, err := client.SubmitLogin(context.Background(), Credentials{Username: "alice", Password: "Password1"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := client.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	snap := client.MetricsSnapshot()
	if snap.Counters[MetricLoginSuccess] != 1 {
		t.Fatalf("login success counter = %d", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricLogout] != 1 {
		t.Fatalf("logout counter = %d", snap.Counters[MetricLogout])
	}
}
