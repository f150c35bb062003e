package auth

// Package auth contains domain-level types for authentication.
// It is pure and free of framework/adapter concerns.

import "time"

// Identity is the verified principal attached to an authenticated request.
// It is derived from the identity token and carries no mutable session state;
// the token itself is the only credential.
type Identity struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Denial messages surfaced to clients. Signature mismatch, tampering, and
// expiry all map to MsgInvalidAuthentication so the failure mode is not
// leaked to the caller.
const (
	MsgAuthenticationRequired = "Authentication required"
	MsgInvalidAuthentication  = "Invalid authentication"
	MsgInvalidCredentials     = "Invalid credentials"
)
