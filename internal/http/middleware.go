package httpx

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/vitaltrack/vitaltrack/internal/domain/auth"
	"github.com/vitaltrack/vitaltrack/internal/ratelimit"
)

// TokenVerifier validates an identity token and returns the identity it
// carries.
type TokenVerifier interface {
	Verify(token string) (domainauth.Identity, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
// Production responses carry a generic message; dev responses include the
// panic value.
func Recover(logger *slog.Logger, isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					msg := "Internal server error"
					if isDev {
						msg = fmt.Sprintf("panic: %v", err)
					}
					WriteError(w, http.StatusInternalServerError, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that authenticates the request from the
// session cookie. A missing cookie and a failed verification produce
// distinct 401 messages; the verified identity is placed in the request
// context for handlers. The middleware never extends token expiry.
// There is no separate unexpected-failure message here: authentication is
// pure cookie extraction plus signature verification, so anything beyond the
// two 401s can only be a panic, which Recover converts to the generic 500.
func RequireAuth(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, http.StatusUnauthorized, domainauth.MsgAuthenticationRequired)
				return
			}

			identity, err := verifier.Verify(cookie.Value)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, domainauth.MsgInvalidAuthentication)
				return
			}

			ctx := SetIdentityInContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimit returns a middleware that enforces the limiter per client IP and
// route path. Denials carry a Retry-After header rounded up to whole
// seconds. A store failure fails open: throttling is protection, not a
// dependency worth a full outage.
func RateLimit(limiter *ratelimit.Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	if limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r) + "|" + r.URL.Path
			denial, err := limiter.Allow(r.Context(), key)
			if err != nil {
				if logger != nil {
					logger.WarnContext(r.Context(), "rate limit store failed", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			if denial != nil {
				w.Header().Set("Retry-After", strconv.Itoa(denial.RetryAfterSeconds()))
				WriteError(w, http.StatusTooManyRequests, denial.Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client address for rate-limit keying: first
// X-Forwarded-For hop, then X-Real-IP, then the connection's remote host.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
