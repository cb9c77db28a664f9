package layout

// navbarTemplate is the site navigation header. It takes no data.
const navbarTemplate = `{{define "navbar"}}<header class="site-header">
  <nav class="navbar" aria-label="Principal">
    <a href="/" class="navbar-brand">Laboratorio López</a>
    <ul class="navbar-links">
      <li><a href="/">Inicio</a></li>
      <li><a href="/analisis">Análisis</a></li>
      <li><a href="/nosotros">Nosotros</a></li>
    </ul>
  </nav>
</header>{{end}}`

// footerTemplate is the site footer. It takes no data.
const footerTemplate = `{{define "footer"}}<footer class="site-footer">
  <p>&copy; Laboratorio López. Análisis clínicos de confianza.</p>
  <p><a href="/nosotros">Conócenos</a> &middot; <a href="/analisis">Catálogo de análisis</a></p>
</footer>{{end}}`

const shellTemplate = `{{define "shell"}}<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteName}}</title>
  {{- if .Description}}
  <meta name="description" content="{{.Description}}">
  {{- end}}
  {{- if .Canonical}}
  <link rel="canonical" href="{{.Canonical}}">
  {{- end}}
  {{.Head}}
  <style>` + shellCSS + `</style>
</head>
<body>
  <div id="top"></div>
  {{template "navbar"}}
  <main class="site-main">
{{.Body}}
  </main>
  {{template "footer"}}
  {{.ScrollScript}}
</body>
</html>
{{end}}`

const shellCSS = `
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; color: #1f2933; }
.site-header { border-bottom: 1px solid #e4e7eb; background: #ffffff; }
.navbar { display: flex; align-items: center; justify-content: space-between; max-width: 1100px; margin: 0 auto; padding: 1rem; }
.navbar-brand { font-weight: 700; color: #0b6e4f; text-decoration: none; }
.navbar-links { display: flex; gap: 1.5rem; list-style: none; margin: 0; padding: 0; }
.navbar-links a { color: inherit; text-decoration: none; }
.site-main { max-width: 1100px; margin: 0 auto; padding: 2rem 1rem; }
.site-footer { border-top: 1px solid #e4e7eb; padding: 2rem 1rem; text-align: center; color: #616e7c; font-size: 0.9rem; }
`

// analysisSectionTemplate scopes the analysis styling to its children.
const analysisSectionTemplate = `{{define "analysis-section"}}<section class="analysis-section">
  <style>
    .analysis-section { line-height: 1.7; }
    .analysis-section h1, .analysis-section h2 { color: #0b6e4f; }
    .analysis-section table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
    .analysis-section th, .analysis-section td { border: 1px solid #e4e7eb; padding: 0.5rem; text-align: left; }
    .analysis-section pre { background: #f5f7fa; padding: 1rem; overflow-x: auto; }
    .analysis-section .article-list { list-style: none; padding: 0; }
    .analysis-section .article-list li { margin-bottom: 1rem; }
  </style>
{{.}}
</section>{{end}}`

// analysisArticleTemplate is the bare full-height article container.
const analysisArticleTemplate = `{{define "analysis-article"}}<div class="analysis-article" style="min-height: 100vh">
{{.}}
</div>{{end}}`
