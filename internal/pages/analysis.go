package pages

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/laboratoriolopez/labsite/internal/content"
	"github.com/laboratoriolopez/labsite/internal/layout"
)

var indexTmpl = template.Must(template.New("analysis-index").Parse(`<h1>Análisis</h1>
{{if .}}<ul class="article-list">
{{range .}}  <li><a href="/analisis/{{.Slug}}">{{.Title}}</a>{{if .Summary}}<br><span>{{.Summary}}</span>{{end}}</li>
{{end}}</ul>{{else}}<p>Pronto publicaremos nuestro catálogo.</p>{{end}}`))

func (p *Pages) handleAnalysisIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, p.articles.All()); err != nil {
		p.fail(w, r, err)
		return
	}
	body, err := p.layout.AnalysisSection(template.HTML(buf.String()))
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, r, http.StatusOK, layout.Page{
		Title:       "Análisis",
		Description: "Catálogo de análisis clínicos.",
		Canonical:   p.canonical(AnalysisPath),
		Body:        body,
	})
}

func (p *Pages) handleAnalysisArticle(w http.ResponseWriter, r *http.Request) {
	a, ok := p.articles.Get(chi.URLParam(r, "slug"))
	if !ok {
		p.handleNotFound(w, r)
		return
	}
	body, err := p.articleBody(a)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, r, http.StatusOK, layout.Page{
		Title:       a.Title,
		Description: a.Summary,
		Canonical:   p.canonical(ArticlePath(a.Slug)),
		Body:        body,
	})
}

// articleBody nests the article container inside the section wrapper.
func (p *Pages) articleBody(a content.Article) (template.HTML, error) {
	inner, err := p.layout.AnalysisArticle(a.Body)
	if err != nil {
		return "", err
	}
	return p.layout.AnalysisSection(inner)
}
