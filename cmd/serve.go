package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gosite/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web form and JSON API",
	Long: `Start the web front end: a form page for soil analysis and wind load
calculation backed by a JSON API.

Endpoints:
  GET  /                               form page
  GET  /api/tables                     lookup tables
  GET  /api/wind/subtypes/{category}   specific types of a category
  POST /api/soil/analyze               soil analysis
  POST /api/wind/compute               wind load
  POST /api/soil/report                soil PDF report
  POST /api/wind/report                wind PDF report

Examples:
  gosite serve --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	model, err := soilModel(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(model, cfg.Recorder(), server.Options{
		RateLimit: cfg.Server.RateLimit,
		Burst:     cfg.Server.Burst,
	})
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
