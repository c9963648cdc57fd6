package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"memo2text/internal/api/server"
	"memo2text/internal/app"
)

var host string
var port string
var environment string

func init() {
	Cmd.Flags().StringVar(&host, "host", "127.0.0.1", "listen address")
	Cmd.Flags().StringVarP(&port, "port", "p", "8080", "listen port")
	Cmd.Flags().StringVar(&environment, "env", "development", "environment: development or production")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for conversion and transcription",
	Long: `Run the HTTP API for conversion and transcription.

POST /api/v1/conversions     convert an audio file on this host to MP3
POST /api/v1/transcriptions  transcribe an audio file on this host`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := app.InitializeRegistry()
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := server.DefaultConfig()
		cfg.Host = host
		cfg.Port = port
		cfg.Environment = environment

		srv := server.NewServer(cfg, registry, logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}
