package httpx

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCookiePolicy_Session(t *testing.T) {
	p := CookiePolicy{Name: "vt_session", Domain: "example.com", Secure: true, TTL: 168 * time.Hour}
	c := p.Session("tok")

	assert.Equal(t, "vt_session", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, int((168 * time.Hour).Seconds()), c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestCookiePolicy_ClearMirrorsAttributes(t *testing.T) {
	p := CookiePolicy{Name: "vt_session", Domain: "example.com", Secure: true, TTL: 168 * time.Hour}
	set, clear := p.Session("tok"), p.Clear()

	assert.Empty(t, clear.Value)
	assert.Negative(t, clear.MaxAge)
	assert.False(t, clear.Expires.After(time.Unix(1, 0)))

	// Browsers only delete a cookie when these match the original.
	assert.Equal(t, set.Name, clear.Name)
	assert.Equal(t, set.Path, clear.Path)
	assert.Equal(t, set.Domain, clear.Domain)
	assert.Equal(t, set.HttpOnly, clear.HttpOnly)
	assert.Equal(t, set.Secure, clear.Secure)
	assert.Equal(t, set.SameSite, clear.SameSite)
}
