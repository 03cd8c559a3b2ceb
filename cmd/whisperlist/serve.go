package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/whisperlist/whisperlist/internal/common"
	"github.com/whisperlist/whisperlist/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the transcription HTTP endpoint",
		Long: `Starts the HTTP server exposing POST /api/transcribe. Each request
uploads one audio file, which is transcribed and classified into urgent
and later buckets by the configured providers.`,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "listen host (overrides config)")
	cmd.Flags().Int("port", 0, "listen port (overrides config)")
	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	p, err := buildPipeline()
	if err != nil {
		return err
	}

	srv := server.New(p,
		viper.GetString("server.host"),
		viper.GetInt("server.port"),
		slog.Default())

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-cmd.Context().Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	common.LogInfo("server stopped", common.Fields{
		"host": viper.GetString("server.host"),
		"port": viper.GetInt("server.port"),
	})
	return nil
}
