package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LABSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// LABSITE_BASE_URL -> base_url, etc.
	if err := k.Load(env.Provider("LABSITE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LABSITE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// reservedPaths are routes the server registers itself.
var reservedPaths = map[string]bool{
	"/robots.txt":  true,
	"/sitemap.xml": true,
	"/healthz":     true,
	"/analisis":    true,
}

// reservedPrefix holds the analysis article routes.
const reservedPrefix = "/analisis/"

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url %q: host is required", c.BaseURL)
	}

	for name, p := range map[string]string{"redirect_path": c.RedirectPath, "info_path": c.InfoPath} {
		if !strings.HasPrefix(p, "/") || p == "/" {
			return fmt.Errorf("%s %q must be an absolute path other than /", name, p)
		}
	}
	if c.RedirectPath == c.InfoPath {
		return fmt.Errorf("redirect_path and info_path must differ")
	}
	for _, p := range []string{c.RedirectPath, c.InfoPath} {
		if reservedPaths[p] || strings.HasPrefix(p, reservedPrefix) {
			return fmt.Errorf("path %q is reserved", p)
		}
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.SessionCookie == "" {
		return fmt.Errorf("session_cookie is required")
	}

	if c.SessionMaxIdle != "" {
		d, err := time.ParseDuration(c.SessionMaxIdle)
		if err != nil {
			return fmt.Errorf("invalid session_max_idle %q: %w", c.SessionMaxIdle, err)
		}
		if d <= 0 {
			return fmt.Errorf("session_max_idle must be positive, got %q", c.SessionMaxIdle)
		}
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// MaxIdle returns SessionMaxIdle as a duration, falling back to 30 days
// when it is empty or invalid.
func (c *Config) MaxIdle() time.Duration {
	if d, err := time.ParseDuration(c.SessionMaxIdle); err == nil && d > 0 {
		return d
	}
	return 30 * 24 * time.Hour
}

// Origin returns BaseURL without a trailing slash.
func (c *Config) Origin() string {
	return strings.TrimRight(c.BaseURL, "/")
}
