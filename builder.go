package goShop

import (
	"errors"
	"net/http"

	"github.com/MrEthical07/goShop/middleware"
	"github.com/MrEthical07/goShop/session"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goShop APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  *redis.Client

	httpClient *http.Client
	backend    session.Backend
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis supplies the Redis client backing the redis session backend.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient overrides the transport used for all outbound calls. The
// client's transport is still wrapped with request-ID injection.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithSessionBackend supplies an explicit persistence backend, bypassing
// [Config.Session].Backend resolution.
func (b *Builder) WithSessionBackend(backend session.Backend) *Builder {
	b.backend = backend
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- SESSION BACKEND --------
	backend := b.backend
	if backend == nil {
		switch cfg.Session.Backend {
		case BackendRedis:
			if b.redis == nil {
				return nil, errors.New("redis session backend requires redis client")
			}
			backend = session.NewRedisBackend(b.redis, cfg.Session.RedisPrefix)
		case BackendFile:
			path := cfg.Session.FilePath
			if path == "" {
				var err error
				path, err = session.DefaultSessionPath()
				if err != nil {
					return nil, err
				}
			}
			backend = session.NewFileBackend(path)
		default:
			backend = session.NewMemoryBackend()
		}
	}

	// -------- SESSION STORE --------
	store := NewSessionStore(backend)

	// -------- TRANSPORT --------
	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *httpClient
	wrapped.Transport = middleware.RequestID(base, cfg.API.RequestIDHeader)

	client := &Client{
		config:  cfg,
		session: store,
		http:    &wrapped,
	}

	client.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	client.metrics = NewMetrics(cfg.Metrics)
	store.setObservers(client.audit, client.metrics)

	b.built = true

	return client, nil
}
