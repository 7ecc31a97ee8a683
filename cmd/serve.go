package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docbrowser/internal/site"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the documentation browser web server",
	Long:  `Serves the single-page course browser with its JSON API and websocket navigation session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		logger := newLogger()
		svc, err := newService(cfg, logger)
		if err != nil {
			return err
		}

		database, store, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		srv, err := site.New(site.Config{
			Port:       cfg.Server.Port,
			Title:      cfg.Title,
			Subtitle:   cfg.Subtitle,
			ContentDir: contentDir(cfg),
			AllowAll:   cfg.Server.AllowAll,
		}, svc, store, logger.WithPrefix("site"))
		if err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logger.Info("starting", "version", Version, "modules", svc.Catalog().Len(), "root", svc.Root(), "database", database.Path())
		return srv.Start(serveOpen)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the browser after starting")
	rootCmd.AddCommand(serveCmd)
}
