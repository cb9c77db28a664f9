package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieProvider is the default Provider. It reads the session id from a
// cookie and looks it up in a SessionStore. A visitor without a cookie
// gets a session that is only stored once the cookie comes back, so
// one-off requests such as crawlers leave no rows behind. It does not
// judge whether a session is still good; that belongs to whoever owns
// sign-in.
type CookieProvider struct {
	Store  *SessionStore
	Cookie string
	Secure bool
}

// NewCookieProvider returns a CookieProvider storing ids under cookie.
func NewCookieProvider(store *SessionStore, cookie string, secure bool) *CookieProvider {
	return &CookieProvider{Store: store, Cookie: cookie, Secure: secure}
}

// Session implements Provider. It never writes the cookie; IssueCookie
// does that once the session is in scope.
func (p *CookieProvider) Session(r *http.Request) (*Session, error) {
	ctx := r.Context()
	c, err := r.Cookie(p.Cookie)
	if err != nil || uuid.Validate(c.Value) != nil {
		now := time.Now().UTC()
		return &Session{ID: uuid.New().String(), CreatedAt: now, LastSeen: now}, nil
	}

	sess, err := p.Store.Get(ctx, c.Value)
	switch {
	case err == nil:
		if err := p.Store.Touch(ctx, sess.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return sess, nil
	case errors.Is(err, ErrNotFound):
		// Second request from this visitor, or a pruned session.
		created, err := p.Store.CreateWithID(ctx, c.Value)
		if err != nil {
			// A concurrent request may have stored it first.
			if existing, getErr := p.Store.Get(ctx, c.Value); getErr == nil {
				return existing, nil
			}
			return nil, err
		}
		return created, nil
	default:
		return nil, err
	}
}

// IssueCookie returns middleware that sets the session cookie on the
// response for whatever session ended up in scope.
func (p *CookieProvider) IssueCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := FromContext(r.Context()); ok {
			if c, err := r.Cookie(p.Cookie); err != nil || c.Value != sess.ID {
				http.SetCookie(w, &http.Cookie{
					Name:     p.Cookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   p.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}
		next.ServeHTTP(w, r)
	})
}
