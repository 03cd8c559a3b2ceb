// Package pipeline chains the transcription and classification providers
// into the single request/response hop the endpoint exposes.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/whisperlist/whisperlist/internal/llm"
	"github.com/whisperlist/whisperlist/internal/stt"
)

// Pipeline runs audio bytes through speech-to-text and then bucket
// classification. It holds no state between calls.
type Pipeline struct {
	transcriber stt.Client
	classifier  llm.Client
	logger      *slog.Logger
}

// New creates a pipeline over the given providers.
func New(transcriber stt.Client, classifier llm.Client, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		transcriber: transcriber,
		classifier:  classifier,
		logger:      logger,
	}
}

// Run transcribes the audio and classifies the transcript. The returned
// bytes are the classification provider's JSON output verbatim; its
// shape is never validated here. name is only used to keep the upload's
// file extension on the temporary artifact.
func (p *Pipeline) Run(ctx context.Context, audio []byte, name string) (json.RawMessage, error) {
	// The transcription provider's interface takes a file path, so the
	// upload lands in transient storage for the duration of the call.
	tmp, err := os.CreateTemp("", "whisperlist-*"+filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if removeErr := os.Remove(tmp.Name()); removeErr != nil {
			p.logger.Warn("failed to remove temp audio file",
				"path", tmp.Name(),
				"error", removeErr)
		}
	}()

	if _, err := tmp.Write(audio); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	transcript, err := p.transcriber.Transcribe(ctx, tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	p.logger.Debug("audio transcribed",
		"bytes", len(audio),
		"transcript_len", len(transcript))

	result, err := p.classifier.Classify(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	return result, nil
}
