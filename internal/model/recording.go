package model

import (
	"time"

	"github.com/google/uuid"
)

// Recording represents one captured audio session plus its metadata and
// optional transcript.
type Recording struct {
	CreatedAt  time.Time
	ID         string
	Path       string // playable WAV file on disk; removed when the recording is deleted
	Transcript string
	Blob       []byte
	Duration   time.Duration // never computed from the captured audio; stays zero
}

// NewRecording wraps a finished capture. Path points at the WAV file
// written for playback.
func NewRecording(blob []byte, path string) Recording {
	return Recording{
		ID:        uuid.NewString(),
		Blob:      blob,
		Path:      path,
		CreatedAt: time.Now(),
	}
}
