package pages

import (
	"net/http"

	"github.com/laboratoriolopez/labsite/internal/layout"
)

const (
	infoTitle = "Sobre nosotros"
	infoBody  = `<article class="info">
  <h1>` + infoTitle + `</h1>
  <p>En Laboratorio López llevamos años acompañando a pacientes y médicos con
  análisis clínicos precisos, entregados a tiempo y explicados con claridad.</p>
  <p>Contamos con equipo automatizado, controles de calidad diarios y un
  personal químico que revisa cada resultado antes de entregarlo. Toma de
  muestra a domicilio, resultados en línea y precios accesibles para que
  cuidar tu salud sea sencillo.</p>
  <p>Visítanos o agenda tu cita: estamos para servirte.</p>
</article>`
)

func (p *Pages) handleInfo(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, layout.Page{
		Title:       infoTitle,
		Description: "Conoce Laboratorio López.",
		Canonical:   p.canonical(p.cfg.InfoPath),
		Body:        infoBody,
	})
}
