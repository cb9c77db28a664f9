package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/laboratoriolopez/labsite/internal/robots"
)

var robotsOrigin string

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Print the robots.txt the server would send",
	RunE: func(cmd *cobra.Command, args []string) error {
		origin := robotsOrigin
		if origin == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			origin = cfg.Origin()
		}
		fmt.Fprintln(cmd.OutOrStdout(), robots.Body(origin))
		return nil
	},
}

func init() {
	robotsCmd.Flags().StringVar(&robotsOrigin, "origin", "", "site origin (defaults to base_url)")
	rootCmd.AddCommand(robotsCmd)
}
