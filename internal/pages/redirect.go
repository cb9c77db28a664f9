package pages

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/laboratoriolopez/labsite/internal/layout"
)

// RootPath is where the redirect page always sends the visitor.
const RootPath = "/"

// Navigator moves the visitor to another path.
type Navigator interface {
	Navigate(path string) error
}

// Redirect sends nav to the site root. There is no condition and no
// retry; a Navigator error is returned as is.
func Redirect(nav Navigator) error {
	return nav.Navigate(RootPath)
}

// RedirectingMessage is shown while the browser navigates away.
const RedirectingMessage = "Redirigiendo..."

// markupNavigator is a Navigator whose navigation is carried out by the
// page it renders.
type markupNavigator interface {
	Navigator
	markup() (head, body template.HTML)
}

// htmlNavigator navigates the browser that receives the page:
// location.replace drops the current query and fragment and keeps the
// redirect page out of history. The meta refresh covers clients without
// scripts.
type htmlNavigator struct {
	head, body template.HTML
}

func (n *htmlNavigator) Navigate(path string) error {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.ContainsAny(path, "\"'<>&\\ \t\r\n") {
		return fmt.Errorf("navigating to %q: not a site path", path)
	}
	n.head = template.HTML(fmt.Sprintf(`<meta http-equiv="refresh" content="0; url=%s">
  <meta name="robots" content="noindex">`, path))
	n.body = template.HTML(fmt.Sprintf(`<p class="redirecting">%s</p>
<script>window.location.replace("%s");</script>`, RedirectingMessage, path))
	return nil
}

func (n *htmlNavigator) markup() (template.HTML, template.HTML) {
	return n.head, n.body
}

func (p *Pages) handleRedirect(w http.ResponseWriter, r *http.Request) {
	nav := p.newNavigator()
	if err := Redirect(nav); err != nil {
		p.fail(w, r, err)
		return
	}
	head, body := nav.markup()
	p.render(w, r, http.StatusOK, layout.Page{
		Title: RedirectingMessage,
		Head:  head,
		Body:  body,
	})
}
