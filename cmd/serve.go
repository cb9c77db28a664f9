package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/laboratoriolopez/labsite/internal/auth"
	"github.com/laboratoriolopez/labsite/internal/db"
	"github.com/laboratoriolopez/labsite/internal/server"
)

var servePort int

// sessionPruneInterval is how often idle sessions are deleted.
const sessionPruneInterval = time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long:  `Starts the HTTP server for the site pages, robots.txt, sitemap.xml and the health check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		pageSet, lib, err := buildPages(cfg)
		if err != nil {
			return err
		}

		dbPath := filepath.Join(cfg.DataDir, "labsite.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		secure := strings.HasPrefix(cfg.BaseURL, "https://")
		store := auth.NewStore(database)
		sessions := auth.NewCookieProvider(store, cfg.SessionCookie, secure)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			Origin:   cfg.Origin(),
			AllowAll: cfg.AllowAllOrigins,
		}, pageSet, sessions, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.PruneEvery(ctx, sessionPruneInterval, cfg.MaxIdle(), logger)
		}()
		defer func() {
			stop()
			wg.Wait()
		}()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		logger.Info("labsite starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("origin", cfg.Origin()),
			zap.String("database", dbPath),
			zap.Int("articles", lib.Len()),
			zap.Duration("session_max_idle", cfg.MaxIdle()),
		)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
