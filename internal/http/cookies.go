package httpx

import (
	"net/http"
	"time"
)

// CookiePolicy describes how the session cookie is built. One instance is
// shared by the auth handlers and middleware so set and clear always agree
// on attributes.
type CookiePolicy struct {
	Name   string
	Domain string
	// Secure is forced on in production; dev over plain http needs it off or
	// browsers drop the cookie.
	Secure bool
	TTL    time.Duration
}

// Session builds the session cookie carrying token.
func (p CookiePolicy) Session(token string) *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    token,
		Path:     "/",
		Domain:   p.Domain,
		MaxAge:   int(p.TTL.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// Clear builds the clearing variant: same attributes, empty value, immediate
// expiry. Attributes must match the set cookie or browsers keep the old one.
func (p CookiePolicy) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    "",
		Path:     "/",
		Domain:   p.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
