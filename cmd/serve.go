package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kayworks/etdxgen/internal/config"
	"github.com/kayworks/etdxgen/internal/etdx"
	"github.com/kayworks/etdxgen/internal/handlers"
	"github.com/kayworks/etdxgen/internal/imagery"
)

func newServeCmd() *cobra.Command {
	var port string
	var templateDir string
	var outputDir string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for assembling and generating batches",
		Long: `Starts the etdxgen web interface on the specified port.

The interface lets you upload card face images into a batch in print
order, trigger template generation, and download the produced .etdx
archives.`,
		Example: `  # Start server on default port 8888
  etdxgen serve

  # Start server on custom port
  etdxgen serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Port
			}
			if templateDir == "" {
				templateDir = cfg.TemplateDir
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			generator, err := etdx.LoadTemplate(templateDir, imagery.Probe)
			if err != nil {
				return err
			}
			handler := handlers.New(generator, outputDir)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/batches", handler.HandleBatches)
			mux.HandleFunc("/api/batches/", handler.HandleBatchDetail)
			mux.HandleFunc("/api/upload", handler.HandleUpload)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("etdxgen interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on")
	cmd.Flags().StringVarP(&templateDir, "template", "t", "", "Extracted base template directory")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Folder to write .etdx archives to")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "Path to config file")

	return cmd
}
