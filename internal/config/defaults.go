package config

// DefaultBaseURL is the public origin of the site. robots.txt and the
// sitemap location are derived from it.
const DefaultBaseURL = "https://www.laboratoriolopez.com"

// DefaultContentInclude selects the analysis articles under content_dir.
var DefaultContentInclude = []string{
	"analisis/**/*.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		BaseURL:        DefaultBaseURL,
		SiteName:       "Laboratorio López",
		RedirectPath:   "/inicio",
		InfoPath:       "/nosotros",
		ContentDir:     "content",
		ContentInclude: append([]string(nil), DefaultContentInclude...),
		DataDir:        "data",
		SessionCookie:  "lablopez_session",
		SessionMaxIdle: "720h",
		ExportDir:      "public",
		LogLevel:       "info",
	}
}
