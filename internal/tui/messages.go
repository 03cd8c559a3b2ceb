package tui

import "github.com/whisperlist/whisperlist/internal/llm"

// recordingFailedMsg signals that microphone access was denied or failed.
type recordingFailedMsg struct {
	err error
}

// recordingStoppedMsg carries the finalized capture.
type recordingStoppedMsg struct {
	err  error
	path string
	blob []byte
}

// transcribeResultMsg carries the outcome of one transcription request.
type transcribeResultMsg struct {
	err         error
	recordingID string
	buckets     llm.Buckets
}
