package stt

import (
	"fmt"
	"strings"

	"github.com/whisperlist/whisperlist/internal/common"
)

// NewClient creates a transcription client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai", "whisper":
		return newWhisperClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported transcription provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
