package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/laboratoriolopez/labsite/internal/auth"
	"github.com/laboratoriolopez/labsite/internal/content"
	"github.com/laboratoriolopez/labsite/internal/db"
	"github.com/laboratoriolopez/labsite/internal/layout"
	"github.com/laboratoriolopez/labsite/internal/pages"
)

const origin = "https://www.laboratoriolopez.com"

func newTestServer(t *testing.T, cfg Config) (*Server, *auth.SessionStore) {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	renderer, err := layout.New("Laboratorio López")
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}
	lib, _ := content.NewLibrary(nil)
	logger := zaptest.NewLogger(t)
	pageSet := pages.New(pages.Config{
		Origin:       origin,
		RedirectPath: "/inicio",
		InfoPath:     "/nosotros",
	}, renderer, lib, logger)

	store := auth.NewStore(database)
	sessions := auth.NewCookieProvider(store, "lablopez_session", false)

	if cfg.Origin == "" {
		cfg.Origin = origin
	}
	return New(cfg, pageSet, sessions, logger), store
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestRobots(t *testing.T) {
	srv, store := newTestServer(t, Config{})

	req := httptest.NewRequest("GET", "/robots.txt?utm_source=x", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	want := "User-agent: *\nAllow: /\nSitemap: https://www.laboratoriolopez.com/sitemap.xml"
	if w.Body.String() != want {
		t.Errorf("body = %q, want %q", w.Body.String(), want)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("content type = %q", w.Header().Get("Content-Type"))
	}

	// Crawlers do not get sessions.
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("robots.txt created %d sessions", n)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("robots.txt should not set cookies")
	}
}

func TestPagesGetSession(t *testing.T) {
	srv, store := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/nosotros", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatal("expected session cookie on page response")
	}
	// Nothing is stored until the visitor comes back with the cookie.
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("expected 0 stored sessions after first visit, got %d", n)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if n, _ := store.Count(context.Background()); n != 1 {
		t.Errorf("expected 1 stored session after return visit, got %d", n)
	}
}

func TestCookielessTrafficStoresNothing(t *testing.T) {
	srv, store := newTestServer(t, Config{})

	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/nosotros", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/no/existe", nil))

	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("cookieless traffic stored %d sessions, want 0", n)
	}
}

func TestSitemap(t *testing.T) {
	srv, store := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/sitemap.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	for _, loc := range []string{
		"<loc>https://www.laboratoriolopez.com/</loc>",
		"<loc>https://www.laboratoriolopez.com/nosotros</loc>",
		"<loc>https://www.laboratoriolopez.com/analisis</loc>",
	} {
		if !strings.Contains(body, loc) {
			t.Errorf("sitemap missing %s", loc)
		}
	}

	if len(w.Result().Cookies()) != 0 {
		t.Error("sitemap.xml should not set cookies")
	}
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("sitemap.xml created %d sessions", n)
	}
}

func TestHeadOnPages(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	for _, target := range []string{"/", "/nosotros", "/inicio", "/analisis", "/sitemap.xml", "/robots.txt"} {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("HEAD", target, nil))
		if w.Code != http.StatusOK {
			t.Errorf("HEAD %s: expected 200, got %d", target, w.Code)
		}
	}
}

func TestNotFoundInShell(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/no/existe", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `class="site-footer"`) {
		t.Error("404 should render in the shell")
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t, Config{AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestServeAndShutdown(t *testing.T) {
	// The in-memory database is closed by t.Cleanup, after this check.
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))

	srv, _ := newTestServer(t, Config{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	tr := &http.Transport{}
	client := &http.Client{Transport: tr, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/robots.txt")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	tr.CloseIdleConnections()

	if !strings.HasPrefix(string(body), "User-agent: *") {
		t.Errorf("unexpected body %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v after shutdown", err)
	}
}
