package goShop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxErrorBodyBytes caps how much of a failure body is read for message
// extraction. Error envelopes are small; anything larger is truncated.
const maxErrorBodyBytes = 64 << 10

// Client is the request gateway: the only point where remote-call outcomes
// are turned into the decision contract consumers act on. Every outbound
// call reads the current credential from the [SessionStore], attaches it as
// a bearer header when present, and classifies failures via [Classify].
//
// The gateway never retries and never mutates the session; on an
// Unauthorized classification the caller decides whether to invoke
// [SessionStore.Logout] and gate on login.
//
//	Docs: docs/gateway.md
type Client struct {
	config  Config
	session *SessionStore
	http    *http.Client
	audit   *auditDispatcher
	metrics *Metrics
}

// Session returns the session store owned by this client.
func (c *Client) Session() *SessionStore {
	return c.session
}

// Initialize restores the persisted session. See [SessionStore.Initialize].
func (c *Client) Initialize(ctx context.Context) error {
	if c == nil || c.session == nil {
		return ErrClientNotReady
	}
	return c.session.Initialize(ctx)
}

// Close describes the close operation and its observable behavior.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
func (c *Client) AuditDropped() uint64 {
	if c == nil || c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

// Register creates an account via POST /auth/register. Role defaults to
// [Config.Account.DefaultRole] when empty. Registration does not adopt a
// session; callers log in afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Identity, error) {
	if c == nil || c.http == nil {
		return Identity{}, ErrClientNotReady
	}
	if req.Role == "" {
		req.Role = c.config.Account.DefaultRole
	}

	var id Identity
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &id); err != nil {
		c.metrics.Inc(MetricRegisterFailure)
		c.audit.emit(ctx, auditEventRegisterFailure, false, req.Email, err, nil)
		return Identity{}, err
	}

	c.metrics.Inc(MetricRegisterSuccess)
	c.audit.emit(ctx, auditEventRegisterSuccess, true, req.Email, nil, nil)
	return id, nil
}

// Login exchanges credentials for a bearer token and identity via
// POST /auth/login. The result is returned, never adopted: callers pass it
// to [SessionStore.Login] to transition the session, keeping classification
// and state mutation in separate hands.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if c == nil || c.http == nil {
		return LoginResult{}, ErrClientNotReady
	}

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		c.metrics.Inc(MetricLoginFailure)
		c.audit.emit(ctx, auditEventLoginFailure, false, email, err, nil)
		return LoginResult{}, err
	}

	c.metrics.Inc(MetricLoginSuccess)
	c.audit.emit(ctx, auditEventLoginSuccess, true, email, nil, nil)
	return result, nil
}

// do is the generic call primitive behind every typed operation.
//
// Contract per call: read the credential from the session store (never
// cached), attach it when present, send, and either decode a 2xx payload
// into out or return the classified [APIError]. Transport-level failures
// classify as Unknown with status 0. No retries, ever.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	u, err := url.JoinPath(c.config.API.BaseURL, path)
	if err != nil {
		return fmt.Errorf("build request url: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ua := userAgentFromContext(ctx, c.config.API.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	if rid := requestIDFromContext(ctx); rid != "" {
		req.Header.Set(c.config.API.RequestIDHeader, rid)
	} else {
		req.Header.Set(c.config.API.RequestIDHeader, uuid.NewString())
	}

	// Credential is read per call; a login or logout between two calls is
	// always visible to the next request.
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observeLatency(start)
		fail := &APIError{
			Kind:    FailureUnknown,
			Status:  0,
			Message: err.Error(),
		}
		c.recordFailure(ctx, method, path, fail)
		return fail
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		defer c.observeLatency(start)
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}
		if len(data) == 0 {
			return nil
		}
		if err := decodePayload(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	c.observeLatency(start)

	fail := Classify(resp.StatusCode, data)
	c.recordFailure(ctx, method, path, fail)
	return fail
}

func (c *Client) observeLatency(start time.Time) {
	c.metrics.Observe(MetricRequestLatency, time.Since(start))
}

func (c *Client) recordFailure(ctx context.Context, method, path string, fail *APIError) {
	switch fail.Kind {
	case FailureUnauthorized:
		c.metrics.Inc(MetricRequestUnauthorized)
	case FailureForbidden:
		c.metrics.Inc(MetricRequestForbidden)
	case FailureNotFound:
		c.metrics.Inc(MetricRequestNotFound)
	case FailureValidation:
		c.metrics.Inc(MetricRequestValidation)
	default:
		c.metrics.Inc(MetricRequestUnknown)
	}

	c.audit.emit(ctx, auditEventRequestFailure, false, "", fail, func() map[string]string {
		return map[string]string{
			"method": method,
			"path":   path,
			"kind":   fail.Kind.String(),
			"status": fmt.Sprintf("%d", fail.Status),
		}
	})
}

// decodePayload decodes a 2xx body into out, tolerating the paginated
// envelope for slice targets: {"content": [...]} and a bare array both
// yield the same ordered sequence. The dual shape is an upstream API
// inconsistency that is preserved here and nowhere else.
func decodePayload(data []byte, out any) error {
	target, ok := out.(*[]Product)
	if !ok {
		return json.Unmarshal(data, out)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, target)
	}

	var envelope struct {
		Content []Product `json:"content"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if envelope.Content == nil {
		return fmt.Errorf("products payload has no content field")
	}
	*target = envelope.Content
	return nil
}
