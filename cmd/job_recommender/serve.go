package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing POST /recommend, GET /metadata and GET /health.

The port defaults to PORT or 5000; --port overrides both. With CATALOG_REFRESH set (a cron
schedule such as "@every 10m"), file catalogs are re-read and the Redis cache is dropped
on that schedule.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	var hooks []func()
	if cfg.RefreshSchedule != "" {
		reload := reloaderFor(cfg, store)
		if reload == nil {
			log.Printf("[catalog] %s store reads are live; refresh_schedule ignored", cfg.Store)
		} else {
			refresher, err := catalog.NewRefresher(cfg.RefreshSchedule, reload)
			if err != nil {
				store.Close()
				return err
			}
			if err := refresher.Start(context.Background()); err != nil {
				store.Close()
				return err
			}
			hooks = append(hooks, refresher.Stop)
		}
	}

	srv, err := server.New(server.Config{Port: cfg.Port, BeforeClose: hooks}, store)
	if err != nil {
		for _, stop := range hooks {
			stop()
		}
		store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
