// Package robots serves the site's robots.txt.
package robots

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultOrigin is the origin the sitemap location is derived from.
const DefaultOrigin = "https://www.laboratoriolopez.com"

// ContentType is the media type of every robots.txt response.
const ContentType = "text/plain; charset=utf-8"

// Body returns the robots.txt payload for origin: an allow-all crawl
// directive followed by the sitemap location.
func Body(origin string) string {
	origin = strings.TrimRight(origin, "/")
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml", origin)
}

// Handler returns an http.Handler that always answers with the same
// robots.txt for origin. The request's headers and query are ignored.
func Handler(origin string) http.Handler {
	body := []byte(Body(origin))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		w.Header().Set("Content-Length", fmt.Sprint(len(body)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		w.Write(body)
	})
}
