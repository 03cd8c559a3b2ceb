package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/whisperlist/whisperlist/internal/common"
	"github.com/whisperlist/whisperlist/internal/model"
)

// startRecordingCmd requests microphone access and begins capture. The
// session has already transitioned to Recording; failure rolls it back
// via recordingFailedMsg.
func startRecordingCmd(recorder AudioRecorder) tea.Cmd {
	return func() tea.Msg {
		if err := recorder.Start(); err != nil {
			return recordingFailedMsg{err: err}
		}
		return nil
	}
}

// stopRecordingCmd finalizes the capture and writes the playable WAV file.
func stopRecordingCmd(recorder AudioRecorder, dataDir string) tea.Cmd {
	return func() tea.Msg {
		blob, err := recorder.Stop()
		if err != nil {
			return recordingStoppedMsg{err: err}
		}

		path := filepath.Join(dataDir, fmt.Sprintf("rec-%s.wav", uuid.NewString()))
		if err := os.WriteFile(path, blob, 0o600); err != nil {
			return recordingStoppedMsg{err: fmt.Errorf("failed to write recording: %w", err)}
		}

		return recordingStoppedMsg{blob: blob, path: path}
	}
}

// transcribeCmd uploads one recording to the endpoint. Failures are
// logged and carried back to the session, which swallows them after
// clearing the transcribing flag.
func transcribeCmd(t Transcriber, rec model.Recording) tea.Cmd {
	return func() tea.Msg {
		buckets, err := t.Transcribe(context.Background(), rec.Blob, filepath.Base(rec.Path))
		if err != nil {
			common.LogError(err, "transcription request failed", common.Fields{
				"recording_id": rec.ID,
			})
		}
		return transcribeResultMsg{recordingID: rec.ID, buckets: buckets, err: err}
	}
}

// releaseRecordings removes the playable files of deleted recordings.
func releaseRecordings(recs []model.Recording) {
	for _, r := range recs {
		if r.Path == "" {
			continue
		}
		if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove recording file", "path", r.Path, "error", err)
		}
	}
}
