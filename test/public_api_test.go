package test

import (
	"context"
	"net/http"
	"testing"

	goShop "github.com/MrEthical07/goShop"
	"github.com/MrEthical07/goShop/middleware"
	"github.com/MrEthical07/goShop/session"
	"github.com/MrEthical07/goShop/token"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = goShop.New

	var _ *goShop.Client
	var _ *goShop.SessionStore
	var _ goShop.Config
	var _ goShop.SessionSnapshot
	var _ goShop.LoginResult
	var _ goShop.RegisterRequest
	var _ goShop.Identity
	var _ goShop.Product
	var _ goShop.ProductInput
	var _ goShop.AuditSink
	var _ *goShop.APIError

	var _ error = goShop.ErrUnauthorized
	var _ error = goShop.ErrForbidden
	var _ error = goShop.ErrNotFound
	var _ error = goShop.ErrValidation
	var _ error = goShop.ErrSessionCorrupt
	var _ error = goShop.ErrAlreadyInitialized

	var _ session.Backend = (*session.MemoryBackend)(nil)
	var _ session.Backend = (*session.FileBackend)(nil)
	var _ session.Backend = (*session.RedisBackend)(nil)

	var _ func(http.RoundTripper, string) http.RoundTripper = middleware.RequestID
	var _ func(http.RoundTripper, middleware.TokenSource) http.RoundTripper = middleware.Bearer

	var _ func(*goShop.Client, context.Context, string, string) (goShop.LoginResult, error) = (*goShop.Client).Login
	var _ func(*goShop.Client, context.Context) ([]goShop.Product, error) = (*goShop.Client).ListProducts
	var _ func(*goShop.SessionStore, context.Context, string, goShop.Identity) error = (*goShop.SessionStore).Login
	var _ func(*goShop.SessionStore, context.Context) error = (*goShop.SessionStore).Logout

	var _ func(string) (token.Claims, error) = token.Inspect
	var _ func(int, []byte) *goShop.APIError = goShop.Classify
}
