package cmd

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/laboratoriolopez/labsite/internal/progress"
	"github.com/laboratoriolopez/labsite/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static HTML",
	Long:  `Renders every page, robots.txt and sitemap.xml into a directory that any static host can serve.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to export_dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.ExportDir
	}

	pageSet, _, err := buildPages(cfg)
	if err != nil {
		return err
	}
	r := chi.NewRouter()
	pageSet.RegisterRoutes(r)

	exporter := &site.Exporter{
		Handler:   r,
		Paths:     pageSet.Paths(),
		OutputDir: outputDir,
		Origin:    cfg.Origin(),
		Reporter:  progress.NewReporter(),
	}
	n, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d files)\n", outputDir, n)
	return nil
}
