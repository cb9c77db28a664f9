package cmd

import (
	"fmt"

	"github.com/laboratoriolopez/labsite/internal/config"
	"github.com/laboratoriolopez/labsite/internal/content"
	"github.com/laboratoriolopez/labsite/internal/layout"
	"github.com/laboratoriolopez/labsite/internal/pages"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `labsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// buildPages loads the articles and assembles the page set.
// This is the shared version used by serve and export.
func buildPages(cfg *config.Config) (*pages.Pages, *content.Library, error) {
	renderer, err := layout.New(cfg.SiteName)
	if err != nil {
		return nil, nil, err
	}

	lib, err := content.Load(cfg.ContentDir, cfg.ContentInclude)
	if err != nil {
		return nil, nil, fmt.Errorf("loading articles from %s: %w", cfg.ContentDir, err)
	}

	pageSet := pages.New(pages.Config{
		Origin:       cfg.Origin(),
		RedirectPath: cfg.RedirectPath,
		InfoPath:     cfg.InfoPath,
	}, renderer, lib, logger)
	return pageSet, lib, nil
}
