// Package content loads the analysis articles from Markdown files.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Article is one analysis article.
type Article struct {
	Slug    string
	Title   string
	Summary string
	Body    template.HTML
	Source  string // path relative to the content root
}

// frontMatter is the optional YAML header of an article.
type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Slug    string `yaml:"slug"`
}

// Library is an immutable set of articles keyed by slug.
type Library struct {
	articles []Article
	bySlug   map[string]int
}

// NewLibrary returns a Library over the given articles. Articles are
// ordered by title using Spanish collation. Duplicate slugs are an error.
func NewLibrary(articles []Article) (*Library, error) {
	sorted := append([]Article(nil), articles...)
	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
	})

	lib := &Library{articles: sorted, bySlug: make(map[string]int, len(sorted))}
	for i, a := range sorted {
		if prev, ok := lib.bySlug[a.Slug]; ok {
			return nil, fmt.Errorf("duplicate article slug %q (%s, %s)", a.Slug, sorted[prev].Source, a.Source)
		}
		lib.bySlug[a.Slug] = i
	}
	return lib, nil
}

// All returns the articles ordered by title.
func (l *Library) All() []Article {
	return append([]Article(nil), l.articles...)
}

// Get returns the article with the given slug.
func (l *Library) Get(slug string) (Article, bool) {
	i, ok := l.bySlug[slug]
	if !ok {
		return Article{}, false
	}
	return l.articles[i], true
}

// Len returns the number of articles.
func (l *Library) Len() int { return len(l.articles) }

// Load reads every file under dir matching one of the include globs.
// A missing dir yields an empty Library.
func Load(dir string, include []string) (*Library, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return NewLibrary(nil)
	}
	return LoadFS(os.DirFS(dir), include)
}

// LoadFS is Load over an fs.FS.
func LoadFS(fsys fs.FS, include []string) (*Library, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	md := newMarkdown()
	articles := make([]Article, 0, len(paths))
	for _, p := range paths {
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		a, err := parseArticle(md, p, src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		articles = append(articles, a)
	}
	return NewLibrary(articles)
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

func parseArticle(md goldmark.Markdown, relPath string, src []byte) (Article, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return Article{}, err
	}

	var html bytes.Buffer
	if err := md.Convert(body, &html); err != nil {
		return Article{}, fmt.Errorf("converting markdown: %w", err)
	}

	a := Article{
		Slug:    meta.Slug,
		Title:   meta.Title,
		Summary: meta.Summary,
		Body:    template.HTML(html.String()),
		Source:  relPath,
	}
	if a.Slug == "" {
		a.Slug = slugFromPath(relPath)
	}
	if a.Title == "" {
		a.Title = extractTitle(string(body), a.Slug)
	}
	return a, nil
}

// splitFrontMatter separates a leading "---" YAML block from the body.
func splitFrontMatter(src []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return meta, []byte(text), nil
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return meta, nil, fmt.Errorf("unterminated front matter")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, nil, fmt.Errorf("front matter: %w", err)
	}
	body := strings.TrimPrefix(rest[end+len("\n---"):], "\n")
	return meta, []byte(body), nil
}

func slugFromPath(relPath string) string {
	base := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(base), " ", "-"))
}

// extractTitle returns the first H1 heading or falls back to the slug.
func extractTitle(body, slug string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return slug
}
