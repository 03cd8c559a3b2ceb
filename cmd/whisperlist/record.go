package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/whisperlist/whisperlist/internal/capture"
	"github.com/whisperlist/whisperlist/internal/client"
	"github.com/whisperlist/whisperlist/internal/tui"
)

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Launch the interactive voice-memo client",
		Long: `Opens the terminal client: record memos from the microphone, send
them to the transcription endpoint, and manage the resulting task list.
All state is in-memory and discarded on exit.`,
		RunE: runRecord,
	}

	cmd.Flags().String("server", "", "transcription endpoint base URL (overrides config)")
	_ = viper.BindPFlag("client.server_url", cmd.Flags().Lookup("server"))

	return cmd
}

func runRecord(_ *cobra.Command, _ []string) error {
	dataDir := filepath.Join(os.TempDir(), "whisperlist")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	return tui.Run(tui.Config{
		Recorder:    capture.NewRecorder(),
		Transcriber: client.New(viper.GetString("client.server_url")),
		DataDir:     dataDir,
	})
}
