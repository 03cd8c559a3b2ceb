package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/whisperlist/whisperlist/internal/llm"
)

func transcribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <audio-file> [audio-file...]",
		Short: "Transcribe and classify audio files from disk",
		Long: `Runs each audio file through the transcription and classification
providers directly, without the HTTP server, and prints the resulting
urgent and later buckets.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTranscribe,
	}
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline()
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(args)), "transcribing")

	for _, path := range args {
		audio, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		raw, err := p.Run(cmd.Context(), audio, filepath.Base(path))
		if err != nil {
			return fmt.Errorf("failed to process %s: %w", path, err)
		}

		var buckets llm.Buckets
		if err := json.Unmarshal(raw, &buckets); err != nil {
			return fmt.Errorf("failed to decode buckets for %s: %w", path, err)
		}

		_ = bar.Add(1)

		fmt.Printf("\n%s\n", path)
		printBucket("urgent", buckets.Urgent)
		printBucket("later", buckets.Later)
	}

	return nil
}

func printBucket(name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", name)
	for _, item := range items {
		fmt.Printf("    - %s\n", item)
	}
}
