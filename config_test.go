package goShop

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "base url blank invalid",
			mutate: func(c *Config) {
				c.API.BaseURL = "   "
			},
			wantValid: false,
		},
		{
			name: "base url relative invalid",
			mutate: func(c *Config) {
				c.API.BaseURL = "/api"
			},
			wantValid: false,
		},
		{
			name: "timeout zero invalid",
			mutate: func(c *Config) {
				c.API.Timeout = 0
			},
			wantValid: false,
		},
		{
			name: "timeout negative invalid",
			mutate: func(c *Config) {
				c.API.Timeout = -time.Second
			},
			wantValid: false,
		},
		{
			name: "request id header blank invalid",
			mutate: func(c *Config) {
				c.API.RequestIDHeader = ""
			},
			wantValid: false,
		},
		{
			name: "session backend file valid",
			mutate: func(c *Config) {
				c.Session.Backend = BackendFile
			},
			wantValid: true,
		},
		{
			name: "session backend redis valid",
			mutate: func(c *Config) {
				c.Session.Backend = BackendRedis
			},
			wantValid: true,
		},
		{
			name: "session backend unknown invalid",
			mutate: func(c *Config) {
				c.Session.Backend = "sqlite"
			},
			wantValid: false,
		},
		{
			name: "redis backend blank prefix invalid",
			mutate: func(c *Config) {
				c.Session.Backend = BackendRedis
				c.Session.RedisPrefix = " "
			},
			wantValid: false,
		},
		{
			name: "default role blank invalid",
			mutate: func(c *Config) {
				c.Account.DefaultRole = ""
			},
			wantValid: false,
		},
		{
			name: "audit enabled zero buffer invalid",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.BufferSize = 0
			},
			wantValid: false,
		},
		{
			name: "audit disabled zero buffer valid",
			mutate: func(c *Config) {
				c.Audit.Enabled = false
				c.Audit.BufferSize = 0
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantValid && err != nil {
				t.Fatalf("expected valid config, got error: %v", err)
			}
			if !tt.wantValid && err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestBuilderRejectsSecondBuild(t *testing.T) {
	b := New()
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error on second Build")
	}
}

func TestBuilderRedisBackendRequiresClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.Backend = BackendRedis

	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected error for redis backend without client")
	}
}
