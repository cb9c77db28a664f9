// Package sitemap serves sitemap.xml, the file robots.txt points
// crawlers at.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

// Path is where the sitemap is served.
const Path = "/sitemap.xml"

// ContentType is the media type of every sitemap response.
const ContentType = "application/xml; charset=utf-8"

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc string `xml:"loc"`
}

// Build returns the sitemap for paths on origin. Paths keep their order;
// duplicates are dropped.
func Build(origin string, paths []string) ([]byte, error) {
	origin = strings.TrimRight(origin, "/")
	set := urlset{Xmlns: xmlns}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		set.URLs = append(set.URLs, url{Loc: origin + p})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Handler serves a sitemap built once from origin and paths. If the
// sitemap cannot be built every request gets a 500.
func Handler(origin string, paths []string) http.Handler {
	body, err := Build(origin, paths)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ContentType)
		w.Header().Set("Content-Length", fmt.Sprint(len(body)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		w.Write(body)
	})
}
