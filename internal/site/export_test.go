package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/laboratoriolopez/labsite/internal/content"
	"github.com/laboratoriolopez/labsite/internal/layout"
	"github.com/laboratoriolopez/labsite/internal/pages"
)

type countingReporter struct {
	total   int
	updates []int
	done    bool
}

func (r *countingReporter) Start(total int)              { r.total = total }
func (r *countingReporter) Update(current int, _ string) { r.updates = append(r.updates, current) }
func (r *countingReporter) Finish()                      { r.done = true }

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/nosotros", "nosotros/index.html"},
		{"/analisis/tsh/", "analisis/tsh/index.html"},
		{"/../etc/passwd", "etc/passwd/index.html"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	renderer, err := layout.New("Laboratorio López")
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}
	lib, err := content.NewLibrary([]content.Article{{Slug: "tsh", Title: "TSH", Body: "<p>tiroides</p>"}})
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	pageSet := pages.New(pages.Config{
		Origin:       "https://www.laboratoriolopez.com",
		RedirectPath: "/inicio",
		InfoPath:     "/nosotros",
	}, renderer, lib, nil)
	r := chi.NewRouter()
	pageSet.RegisterRoutes(r)

	out := t.TempDir()
	reporter := &countingReporter{}
	e := &Exporter{
		Handler:   r,
		Paths:     pageSet.Paths(),
		OutputDir: out,
		Origin:    "https://www.laboratoriolopez.com",
		Reporter:  reporter,
	}
	n, err := e.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7 files, got %d", n)
	}
	if reporter.total != 7 || !reporter.done {
		t.Errorf("reporter total=%d done=%v", reporter.total, reporter.done)
	}
	// Progress counts files written, starting at 1 and ending at the total.
	if len(reporter.updates) != 7 || reporter.updates[0] != 1 || reporter.updates[6] != 7 {
		t.Errorf("reporter updates = %v, want 1..7", reporter.updates)
	}

	for _, f := range []string{
		"index.html",
		"inicio/index.html",
		"nosotros/index.html",
		"analisis/index.html",
		"analisis/tsh/index.html",
	} {
		data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(f)))
		if err != nil {
			t.Errorf("missing %s: %v", f, err)
			continue
		}
		if !strings.Contains(string(data), `class="site-header"`) {
			t.Errorf("%s not rendered in the shell", f)
		}
	}

	robotsTxt, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	if err != nil {
		t.Fatalf("reading robots.txt: %v", err)
	}
	if !strings.HasSuffix(string(robotsTxt), "Sitemap: https://www.laboratoriolopez.com/sitemap.xml") {
		t.Errorf("robots.txt = %q", robotsTxt)
	}

	sitemapXML, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	if err != nil {
		t.Fatalf("reading sitemap.xml: %v", err)
	}
	for _, loc := range []string{
		"<loc>https://www.laboratoriolopez.com/</loc>",
		"<loc>https://www.laboratoriolopez.com/analisis/tsh</loc>",
	} {
		if !strings.Contains(string(sitemapXML), loc) {
			t.Errorf("sitemap.xml missing %s", loc)
		}
	}
}

func TestExportFailsOnMissingPage(t *testing.T) {
	r := chi.NewRouter()
	e := &Exporter{Handler: r, Paths: []string{"/nada"}, OutputDir: t.TempDir()}
	if _, err := e.Export(); err == nil {
		t.Error("expected error for a path that does not render")
	}
}
