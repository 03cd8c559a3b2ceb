// Package stt provides speech-to-text provider clients.
package stt

import "context"

// Client defines the interface for transcription providers.
type Client interface {
	// Transcribe converts the audio file at path into plain transcript text.
	Transcribe(ctx context.Context, path string) (string, error)
}

// Config holds configuration for a transcription client.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	Language string
}
