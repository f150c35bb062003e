package httpx

import (
	"context"

	domainauth "github.com/vitaltrack/vitaltrack/internal/domain/auth"
)

// identityKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware use the same key.
type identityKey struct{}

// SetIdentityInContext returns a child context that carries the verified
// identity.
func SetIdentityInContext(ctx context.Context, identity domainauth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity from context and a boolean
// indicating presence. Handlers behind RequireAuth can rely on presence.
func IdentityFromContext(ctx context.Context) (domainauth.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domainauth.Identity)
	return identity, ok
}
