package goShop

import "context"

type requestIDContextKey struct{}
type userAgentContextKey struct{}

// WithRequestID attaches a caller-chosen request ID to ctx. The gateway
// sends it on the outbound request instead of generating one, which lets a
// consumer correlate its own traces with server logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// WithUserAgent overrides the configured User-Agent for calls made with ctx.
func WithUserAgent(ctx context.Context, userAgent string) context.Context {
	return context.WithValue(ctx, userAgentContextKey{}, userAgent)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func userAgentFromContext(ctx context.Context, fallback string) string {
	if ctx == nil {
		return fallback
	}

	ua, _ := ctx.Value(userAgentContextKey{}).(string)
	if ua == "" {
		return fallback
	}

	return ua
}
