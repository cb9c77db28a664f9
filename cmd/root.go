package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/laboratoriolopez/labsite/internal/logging"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "Laboratorio López website server",
	Long: `labsite serves the Laboratorio López marketing site: the shared
page shell, the analysis catalogue, robots.txt and the visitor session
scope. It can also export the whole site as static files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if cfg, err := loadConfig(); err == nil {
			level = cfg.LogLevel
		}
		var err error
		logger, err = logging.New(level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "labsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
