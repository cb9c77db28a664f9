// Package site writes the rendered site to disk as static files.
package site

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/laboratoriolopez/labsite/internal/progress"
	"github.com/laboratoriolopez/labsite/internal/robots"
	"github.com/laboratoriolopez/labsite/internal/sitemap"
)

// Exporter renders every page path through Handler and writes the result
// under OutputDir, plus robots.txt and sitemap.xml for Origin.
type Exporter struct {
	Handler   http.Handler
	Paths     []string
	OutputDir string
	Origin    string
	Reporter  progress.Reporter
}

// Export writes the site. Returns the number of files written.
func (e *Exporter) Export() (int, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	total := len(e.Paths) + 2
	reporter.Start(total)
	defer reporter.Finish()

	written := 0
	for _, p := range e.Paths {
		if err := e.exportPage(p); err != nil {
			return written, fmt.Errorf("exporting %s: %w", p, err)
		}
		written++
		reporter.Update(written, p)
	}

	sitemapXML, err := sitemap.Build(e.Origin, e.Paths)
	if err != nil {
		return written, err
	}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{"robots.txt", []byte(robots.Body(e.Origin))},
		{"sitemap.xml", sitemapXML},
	} {
		if err := os.WriteFile(filepath.Join(e.OutputDir, f.name), f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written++
		reporter.Update(written, "/"+f.name)
	}

	return written, nil
}

func (e *Exporter) exportPage(urlPath string) error {
	req := httptest.NewRequest(http.MethodGet, urlPath, nil)
	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return fmt.Errorf("status %d", rec.Code)
	}

	outPath := filepath.Join(e.OutputDir, filepath.FromSlash(OutputPath(urlPath)))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, rec.Body.Bytes(), 0o644)
}

// OutputPath maps a URL path to the file that serves it from a static
// host: "/" -> "index.html", "/nosotros" -> "nosotros/index.html".
func OutputPath(urlPath string) string {
	clean := strings.Trim(path.Clean("/"+urlPath), "/")
	if clean == "" {
		return "index.html"
	}
	return clean + "/index.html"
}
