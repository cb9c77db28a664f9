// Package pages holds the site's routes: home, the root redirect, the
// static info page and the analysis section.
package pages

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/laboratoriolopez/labsite/internal/content"
	"github.com/laboratoriolopez/labsite/internal/layout"
)

// AnalysisPath is the root of the analysis section.
const AnalysisPath = "/analisis"

// Config holds the paths and origin the pages are served under.
type Config struct {
	Origin       string
	RedirectPath string
	InfoPath     string
}

// Pages renders every page route.
type Pages struct {
	cfg      Config
	layout   *layout.Renderer
	articles *content.Library
	logger   *zap.Logger

	newNavigator func() markupNavigator
}

// New creates the page set.
func New(cfg Config, renderer *layout.Renderer, articles *content.Library, logger *zap.Logger) *Pages {
	if logger == nil {
		logger = zap.NewNop()
	}
	if articles == nil {
		articles, _ = content.NewLibrary(nil)
	}
	return &Pages{
		cfg:          cfg,
		layout:       renderer,
		articles:     articles,
		logger:       logger,
		newNavigator: func() markupNavigator { return &htmlNavigator{} },
	}
}

// RegisterRoutes mounts all page routes onto the given router.
func (p *Pages) RegisterRoutes(r chi.Router) {
	r.Get("/", p.handleHome)
	r.Get(p.cfg.RedirectPath, p.handleRedirect)
	r.Get(p.cfg.InfoPath, p.handleInfo)
	r.Get(AnalysisPath, p.handleAnalysisIndex)
	r.Get(AnalysisPath+"/{slug}", p.handleAnalysisArticle)
	r.NotFound(p.handleNotFound)
}

// Paths lists every path that renders a page, for static export.
func (p *Pages) Paths() []string {
	paths := []string{"/", p.cfg.RedirectPath, p.cfg.InfoPath, AnalysisPath}
	for _, a := range p.articles.All() {
		paths = append(paths, ArticlePath(a.Slug))
	}
	return paths
}

// ArticlePath returns the route of the article with the given slug.
func ArticlePath(slug string) string {
	return AnalysisPath + "/" + slug
}

// canonical returns the absolute URL of path on the site origin.
func (p *Pages) canonical(path string) string {
	if p.cfg.Origin == "" {
		return ""
	}
	return p.cfg.Origin + path
}

// render writes page in the shell with the given status. The page is
// rendered fully before anything is written so a template error can
// still become a 500.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, page layout.Page) {
	var buf bytes.Buffer
	if err := p.layout.Shell(&buf, page); err != nil {
		p.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	p.logger.Error("rendering page", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
