package pages

import (
	"net/http"

	"github.com/laboratoriolopez/labsite/internal/layout"
)

const homeBody = `<section class="hero">
  <h1>Laboratorio López</h1>
  <p>Análisis clínicos con resultados confiables y atención cercana.</p>
  <p><a href="/analisis">Consulta nuestro catálogo de análisis</a></p>
</section>`

func (p *Pages) handleHome(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, layout.Page{
		Description: "Laboratorio de análisis clínicos.",
		Canonical:   p.canonical("/"),
		Body:        homeBody,
	})
}

func (p *Pages) handleNotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, layout.Page{
		Title: "Página no encontrada",
		Head:  `<meta name="robots" content="noindex">`,
		Body:  `<h1>Página no encontrada</h1><p><a href="/">Volver al inicio</a></p>`,
	})
}
