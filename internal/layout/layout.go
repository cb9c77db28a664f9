// Package layout provides the page chrome shared by every route: the site
// shell (navigation header and footer around the page) and the two
// analysis-section wrappers.
package layout

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/laboratoriolopez/labsite/internal/scroll"
)

// Page is what a route hands to the shell.
type Page struct {
	Title       string
	Description string
	Canonical   string
	// Head is extra markup for <head>, e.g. a meta refresh.
	Head template.HTML
	Body template.HTML
}

// shellData is the template data for the shell.
type shellData struct {
	Page
	SiteName     string
	ScrollScript template.HTML
}

// Renderer renders the layouts.
type Renderer struct {
	tmpl     *template.Template
	siteName string
}

// New parses the layout templates.
func New(siteName string) (*Renderer, error) {
	tmpl := template.New("layout")
	for _, src := range []string{
		navbarTemplate,
		footerTemplate,
		shellTemplate,
		analysisSectionTemplate,
		analysisArticleTemplate,
	} {
		if _, err := tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing layout templates: %w", err)
		}
	}
	return &Renderer{tmpl: tmpl, siteName: siteName}, nil
}

// Shell writes p wrapped in the site chrome: header, then the page body,
// then the footer.
func (r *Renderer) Shell(w io.Writer, p Page) error {
	data := shellData{
		Page:         p,
		SiteName:     r.siteName,
		ScrollScript: scroll.Script(),
	}
	if err := r.tmpl.ExecuteTemplate(w, "shell", data); err != nil {
		return fmt.Errorf("rendering shell: %w", err)
	}
	return nil
}

// AnalysisSection wraps body in the analysis section container and its
// scoped styles.
func (r *Renderer) AnalysisSection(body template.HTML) (template.HTML, error) {
	return r.fragment("analysis-section", body)
}

// AnalysisArticle wraps a single article in a full-height container.
func (r *Renderer) AnalysisArticle(body template.HTML) (template.HTML, error) {
	return r.fragment("analysis-article", body)
}

func (r *Renderer) fragment(name string, body template.HTML) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, body); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
