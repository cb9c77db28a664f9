package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"
)

func staticProvider(sess *Session, err error) Provider {
	return ProviderFunc(func(r *http.Request) (*Session, error) { return sess, err })
}

func TestSessionProviderRendersChildOnce(t *testing.T) {
	want := &Session{ID: "s-1"}
	calls := 0
	var got *Session
	child := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		got, _ = FromContext(r.Context())
	})

	h := SessionProvider(staticProvider(want, nil), zaptest.NewLogger(t))(child)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if calls != 1 {
		t.Fatalf("child rendered %d times, want 1", calls)
	}
	if got != want {
		t.Errorf("session in scope = %v, want %v", got, want)
	}
}

func TestSessionProviderNestedSingleScope(t *testing.T) {
	resolutions := 0
	p := ProviderFunc(func(r *http.Request) (*Session, error) {
		resolutions++
		return &Session{ID: "outer"}, nil
	})
	calls := 0
	child := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		sess, ok := FromContext(r.Context())
		if !ok || sess.ID != "outer" {
			t.Errorf("expected outer session, got %v", sess)
		}
	})

	wrap := SessionProvider(p, nil)
	wrap(wrap(child)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if resolutions != 1 {
		t.Errorf("provider consulted %d times, want 1", resolutions)
	}
	if calls != 1 {
		t.Errorf("child rendered %d times, want 1", calls)
	}
}

func TestSessionProviderErrorLeavesEmptyScope(t *testing.T) {
	calls := 0
	child := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if !InScope(r.Context()) {
			t.Error("expected request to be in scope")
		}
		if _, ok := FromContext(r.Context()); ok {
			t.Error("expected no session after provider error")
		}
	})

	h := SessionProvider(staticProvider(nil, errors.New("backend down")), zaptest.NewLogger(t))(child)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if calls != 1 {
		t.Errorf("child rendered %d times, want 1", calls)
	}
}

func TestFromContextOutsideScope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if InScope(req.Context()) {
		t.Error("plain request should not be in scope")
	}
	if _, ok := FromContext(req.Context()); ok {
		t.Error("plain request should carry no session")
	}
}
