package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"groupsignup/internal/domain"
	"groupsignup/internal/metrics"
)

type contextKey string

const visitorTokenKey contextKey = "visitorToken"

// VisitorCookieName is the cookie carrying the opaque per-visitor token.
const VisitorCookieName = "unique_id"

// visitorCookieMaxAge keeps the identity cookie for a year; the liveness
// window is unrelated and much shorter.
const visitorCookieMaxAge = 365 * 24 * 60 * 60

// SetVisitorToken returns a context with the presented visitor token set.
// The token is empty for a visitor with no cookie yet.
func SetVisitorToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, visitorTokenKey, token)
}

// VisitorTokenFromContext returns the visitor token presented with the
// request, if any.
func VisitorTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(visitorTokenKey).(string)
	return token, ok
}

// TrackVisitor resolves the visitor identity cookie on every request: it
// sweeps and refreshes the liveness tracker, places the presented token in
// the request context, and sets a freshly minted cookie when none was
// presented. A first-contact request therefore still carries an empty
// identity downstream; the visitor's next request has the cookie.
func TrackVisitor(provider domain.IdentityProvider, tracker domain.LivenessTracker, m *metrics.Metrics, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := ""
		if c, err := r.Cookie(VisitorCookieName); err == nil {
			presented = c.Value
		}

		active := tracker.Observe(presented, time.Now())
		if m != nil {
			m.ActiveVisitors.Set(float64(active))
		}

		token, isNew := provider.Identify(presented)
		if isNew {
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   visitorCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		visitor := presented
		if visitor == "" {
			visitor = "NO_COOKIE"
		}
		logger.Debug("visitor", "token", visitor, "active_visitors", active)

		next.ServeHTTP(w, r.WithContext(SetVisitorToken(r.Context(), presented)))
	})
}
