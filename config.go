package goShop

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config defines a public type used by goShop APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Account AccountConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by goShop APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL         string
	Timeout         time.Duration
	UserAgent       string
	RequestIDHeader string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionBackendKind selects which persistence backend Build wires in.
type SessionBackendKind string

const (
	// BackendMemory is an exported constant or variable used by the storefront client.
	BackendMemory SessionBackendKind = "memory"
	// BackendFile is an exported constant or variable used by the storefront client.
	BackendFile SessionBackendKind = "file"
	// BackendRedis is an exported constant or variable used by the storefront client.
	BackendRedis SessionBackendKind = "redis"
)

// SessionConfig defines a public type used by goShop APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	Backend     SessionBackendKind
	FilePath    string // empty means ~/.goshop/session.json
	RedisPrefix string
}

// AccountConfig defines a public type used by goShop APIs.
//
// AccountConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AccountConfig struct {
	DefaultRole string
}

// AuditConfig defines a public type used by goShop APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goShop APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration used by [New].
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:         "http://localhost:8080/api",
			Timeout:         15 * time.Second,
			UserAgent:       "goShop/1.0",
			RequestIDHeader: "X-Request-ID",
		},
		Session: SessionConfig{
			Backend:     BackendMemory,
			RedisPrefix: "gshop",
		},
		Account: AccountConfig{
			DefaultRole: "USER",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// API
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("API BaseURL must be set")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("API BaseURL must be an absolute URL")
	}
	if c.API.Timeout <= 0 {
		return errors.New("API Timeout must be > 0")
	}
	if strings.TrimSpace(c.API.RequestIDHeader) == "" {
		return errors.New("API RequestIDHeader must be set")
	}

	// Session
	switch c.Session.Backend {
	case BackendMemory, BackendFile, BackendRedis:
		// valid
	default:
		return errors.New("Session Backend must be 'memory', 'file' or 'redis'")
	}
	if c.Session.Backend == BackendRedis && strings.TrimSpace(c.Session.RedisPrefix) == "" {
		return errors.New("Session RedisPrefix must be set for the redis backend")
	}

	// Account
	if strings.TrimSpace(c.Account.DefaultRole) == "" {
		return errors.New("Account DefaultRole must be set")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when Audit is enabled")
	}

	return nil
}
