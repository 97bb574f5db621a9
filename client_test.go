package goShop

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recordingServer is a configurable mock storefront used by gateway tests.
type recordingServer struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  http.HandlerFunc
}

func newRecordingServer(handler http.HandlerFunc) (*recordingServer, *httptest.Server) {
	rs := &recordingServer{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.requests = append(rs.requests, r.Clone(r.Context()))
		rs.mu.Unlock()
		rs.handler(w, r)
	}))
	return rs, srv
}

func (rs *recordingServer) last(t *testing.T) *http.Request {
	t.Helper()
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if len(rs.requests) == 0 {
		t.Fatal("no requests recorded")
	}
	return rs.requests[len(rs.requests)-1]
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := DefaultConfig()
	cfg.API.BaseURL = baseURL

	client, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	if err := client.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return client
}

func TestLoginReturnsResultWithoutAdoptingSession(t *testing.T) {
	rs, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "abc",
			"user":  Identity{ID: "1", Email: "admin@example.com", Role: "ADMIN"},
		})
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	result, err := client.Login(context.Background(), "admin@example.com", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token != "abc" || result.User.ID != "1" {
		t.Fatalf("unexpected login result: %+v", result)
	}

	// The gateway must not have touched the session.
	if client.Session().Snapshot().IsAuthenticated {
		t.Fatal("Login must not adopt the session")
	}

	last := rs.last(t)
	if got := last.Header.Get("Authorization"); got != "" {
		t.Fatalf("anonymous login carried Authorization header %q", got)
	}
	if got := last.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestCredentialInjectedPerCall(t *testing.T) {
	rs, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Product{})
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	if _, err := client.ListProducts(ctx); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if got := rs.last(t).Header.Get("Authorization"); got != "" {
		t.Fatalf("anonymous call carried Authorization %q", got)
	}

	if err := client.Session().Login(ctx, "tok-live", testIdentity()); err != nil {
		t.Fatalf("session Login failed: %v", err)
	}

	if _, err := client.ListProducts(ctx); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if got := rs.last(t).Header.Get("Authorization"); got != "Bearer tok-live" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer tok-live")
	}

	// Logout between calls must be visible to the next request.
	if err := client.Session().Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := client.ListProducts(ctx); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if got := rs.last(t).Header.Get("Authorization"); got != "" {
		t.Fatalf("post-logout call carried Authorization %q", got)
	}
}

func TestUnauthorizedLeavesSessionIntact(t *testing.T) {
	_, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "token expired"})
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	if err := client.Session().Login(ctx, "tok-stale", testIdentity()); err != nil {
		t.Fatalf("session Login failed: %v", err)
	}

	_, err := client.ListProducts(ctx)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}

	// Classification is the gateway's job; state mutation is the caller's.
	if !client.Session().Snapshot().IsAuthenticated {
		t.Fatal("gateway must not clear the session on 401")
	}
}

func TestRequestIDHeaderAlwaysPresent(t *testing.T) {
	rs, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Product{})
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	if _, err := client.ListProducts(ctx); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if rs.last(t).Header.Get("X-Request-ID") == "" {
		t.Fatal("expected generated request ID header")
	}

	if _, err := client.ListProducts(WithRequestID(ctx, "caller-chosen")); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if got := rs.last(t).Header.Get("X-Request-ID"); got != "caller-chosen" {
		t.Fatalf("request ID = %q, want caller-chosen", got)
	}
}

func TestTransportFailureClassifiesUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(t, srv.URL)

	_, err := client.ListProducts(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Kind != FailureUnknown || apiErr.Status != 0 {
		t.Fatalf("transport failure classified as %+v, want Unknown/status 0", apiErr)
	}
}

func TestValidationMessageSurfaced(t *testing.T) {
	_, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"timestamp": "2026-01-01T00:00:00Z",
			"status":    400,
			"error":     "Bad Request",
			"message":   "sku already exists",
			"path":      "/api/products",
		})
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.CreateProduct(context.Background(), ProductInput{Name: "X", SKU: "S"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Message != "sku already exists" {
		t.Fatalf("message = %q, want server-provided message", apiErr.Message)
	}
}

func TestRegisterAppliesDefaultRole(t *testing.T) {
	rs, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Identity{ID: "u-2", Email: req.Email, Role: req.Role})
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	id, err := client.Register(context.Background(), RegisterRequest{Email: "new@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if id.Role != "USER" {
		t.Fatalf("role = %q, want default USER", id.Role)
	}
	_ = rs.last(t)
}

func TestNoRetryOnFailure(t *testing.T) {
	rs, srv := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	if _, err := client.ListProducts(context.Background()); err == nil {
		t.Fatal("expected failure")
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if len(rs.requests) != 1 {
		t.Fatalf("request count = %d, want exactly 1 (no retries)", len(rs.requests))
	}
}
