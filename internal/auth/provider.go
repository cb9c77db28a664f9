// Package auth makes the visitor's session available to every page.
//
// The session itself belongs to a Provider; this package only opens the
// scope in which it is visible. Sign-in, sign-out and expiry are the
// Provider's business.
package auth

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Session is the opaque session value handed out by a Provider.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// Provider resolves the session for a request.
type Provider interface {
	Session(r *http.Request) (*Session, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(r *http.Request) (*Session, error)

// Session calls f(r).
func (f ProviderFunc) Session(r *http.Request) (*Session, error) { return f(r) }

type scopeKey struct{}

// scope is the value stored in the request context. A nil session means
// the provider had none to give.
type scope struct {
	session *Session
}

// FromContext returns the session in scope, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sc, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok || sc.session == nil {
		return nil, false
	}
	return sc.session, true
}

// InScope reports whether ctx is inside a session scope, whether or not
// that scope holds a session.
func InScope(ctx context.Context) bool {
	_, ok := ctx.Value(scopeKey{}).(*scope)
	return ok
}

// WithSession returns a copy of ctx carrying sess in a new scope.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{session: sess})
}

// SessionProvider wraps next in a session scope resolved by p. next is
// called exactly once per request. A request that is already in scope
// passes through untouched, so nesting the middleware never opens a
// second scope. Provider errors leave the scope empty and are logged.
func SessionProvider(p Provider, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if InScope(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := p.Session(r)
			if err != nil {
				logger.Warn("resolving session", zap.String("path", r.URL.Path), zap.Error(err))
				sess = nil
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
