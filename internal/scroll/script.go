package scroll

import (
	"fmt"
	"html/template"
	"strings"
)

// scriptViewport is a Viewport that writes each call as a JavaScript
// statement instead of performing it.
type scriptViewport struct {
	b *strings.Builder
}

func (v scriptViewport) ScrollTo(x, y int) {
	fmt.Fprintf(v.b, "    window.scrollTo(%d, %d);\n", x, y)
}

// ElementByID always reports a hit: whether the element exists is only
// known in the browser, so the generated code checks it there.
func (v scriptViewport) ElementByID(id string) (Element, bool) {
	return scriptElement{b: v.b, id: id}, true
}

type scriptElement struct {
	b  *strings.Builder
	id string
}

func (e scriptElement) ScrollIntoView(smooth bool) {
	behavior := "instant"
	if smooth {
		behavior = "smooth"
	}
	fmt.Fprintf(e.b, "    var anchor = document.getElementById(%q);\n", e.id)
	fmt.Fprintf(e.b, "    if (anchor) { anchor.scrollIntoView({ behavior: %q, block: \"start\" }); }\n", behavior)
}

// effectJS returns restore rendered as JavaScript statements.
func effectJS() string {
	var b strings.Builder
	restore(scriptViewport{b: &b})
	return b.String()
}

// The wrapper mirrors Restorer.Observe: it tracks the last path it
// handled so pageshow after DOMContentLoaded does not fire twice.
const scriptHead = `<script>
(function () {
  var last = null;
  function restore() {
    var path = window.location.pathname;
    if (path === last) { return; }
    last = path;
`

const scriptTail = `  }
  if ("scrollRestoration" in history) { history.scrollRestoration = "manual"; }
  document.addEventListener("DOMContentLoaded", restore);
  window.addEventListener("pageshow", restore);
  window.addEventListener("popstate", restore);
})();
</script>`

var script = template.HTML(scriptHead + effectJS() + scriptTail)

// Script returns the inline browser rendition of Restorer.
func Script() template.HTML {
	return script
}
