// Package session owns the client application state: recordings, tasks,
// the active tab, and the recording and transcription flags. All
// mutations go through command methods on Session so every invariant is
// enforced in one place. Nothing here persists; state lives for the
// lifetime of the process only.
package session

import (
	"strings"

	"github.com/whisperlist/whisperlist/internal/common"
	"github.com/whisperlist/whisperlist/internal/llm"
	"github.com/whisperlist/whisperlist/internal/model"
)

// Tab identifies one of the four client views.
type Tab int

// Client tabs.
const (
	TabRecord Tab = iota
	TabTasks
	TabRecordings
	TabHelp
)

// RecorderState is the capture lifecycle state machine.
type RecorderState int

// Recorder states.
const (
	RecorderIdle RecorderState = iota
	RecorderRecording
)

// Session is the single owner of all client state. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Session struct {
	lastError    error
	selectedID   string
	recordings   []model.Recording
	tasks        []model.Task
	activeTab    Tab
	recorder     RecorderState
	transcribing bool
}

// New creates an empty session on the record tab.
func New() *Session {
	return &Session{activeTab: TabRecord}
}

// ActiveTab returns the current view.
func (s *Session) ActiveTab() Tab { return s.activeTab }

// SetTab switches the active view.
func (s *Session) SetTab(t Tab) { s.activeTab = t }

// Recorder returns the capture state.
func (s *Session) Recorder() RecorderState { return s.recorder }

// Transcribing reports whether a transcription request is in flight.
// While true, all transcribe actions are disabled system-wide.
func (s *Session) Transcribing() bool { return s.transcribing }

// Tasks returns all tasks, newest first.
func (s *Session) Tasks() []model.Task { return s.tasks }

// Recordings returns all recordings, newest first.
func (s *Session) Recordings() []model.Recording { return s.recordings }

// LastError returns the most recent swallowed error, for display.
func (s *Session) LastError() error { return s.lastError }

// ClearError drops the displayed error.
func (s *Session) ClearError() { s.lastError = nil }

// SelectedRecording returns the recording the selection points at.
func (s *Session) SelectedRecording() (model.Recording, bool) {
	if s.selectedID == "" {
		return model.Recording{}, false
	}
	for _, r := range s.recordings {
		if r.ID == s.selectedID {
			return r, true
		}
	}
	return model.Recording{}, false
}

// StartRecording transitions Idle -> Recording. Starting while already
// recording is rejected.
func (s *Session) StartRecording() error {
	if s.recorder == RecorderRecording {
		return common.ErrAlreadyRecording
	}
	s.recorder = RecorderRecording
	return nil
}

// StopRecording finalizes a capture into a new Recording, selects it,
// and returns to Idle. Duration is left at zero; it is never computed
// from the captured audio.
func (s *Session) StopRecording(blob []byte, path string) (model.Recording, error) {
	if s.recorder != RecorderRecording {
		return model.Recording{}, common.ErrNotRecording
	}

	rec := model.NewRecording(blob, path)
	s.recordings = append([]model.Recording{rec}, s.recordings...)
	s.selectedID = rec.ID
	s.recorder = RecorderIdle
	return rec, nil
}

// AbortRecording returns to Idle without creating a Recording, e.g. when
// microphone access fails after the transition was requested.
func (s *Session) AbortRecording(err error) {
	s.recorder = RecorderIdle
	s.lastError = err
}

// BeginTranscribe marks a transcription request in flight for the given
// recording. A second request while one is in flight is rejected; the
// flag is the only mutual-exclusion mechanism and it is deliberately
// coarse.
func (s *Session) BeginTranscribe(recordingID string) error {
	if s.transcribing {
		return common.ErrTranscribeInFlight
	}
	if s.indexOfRecording(recordingID) < 0 {
		return common.ErrRecordingNotFound
	}
	s.transcribing = true
	return nil
}

// FinishTranscribe applies the outcome of a transcription request. The
// transcribing flag is cleared on every path: success, empty response,
// or error. On error nothing else changes; the error is kept only for
// display. A response carrying neither bucket key is a no-op.
func (s *Session) FinishTranscribe(recordingID string, buckets llm.Buckets, err error) {
	s.transcribing = false

	if err != nil {
		s.lastError = err
		return
	}

	if buckets.Empty() {
		return
	}

	created := make([]model.Task, 0, len(buckets.Urgent)+len(buckets.Later))
	for _, text := range buckets.Urgent {
		created = append(created, model.NewTask(text, model.CategoryUrgent))
	}
	for _, text := range buckets.Later {
		created = append(created, model.NewTask(text, model.CategoryLater))
	}
	s.tasks = append(created, s.tasks...)

	if i := s.indexOfRecording(recordingID); i >= 0 {
		lines := make([]string, 0, len(created))
		for _, t := range created {
			lines = append(lines, t.Text)
		}
		s.recordings[i].Transcript = strings.Join(lines, "\n")
	}

	s.activeTab = TabTasks
}

// ToggleTask flips a task between completed and not. A completed task
// always comes back as later, even if it started out urgent.
func (s *Session) ToggleTask(taskID string) error {
	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		if s.tasks[i].Category == model.CategoryCompleted {
			s.tasks[i].Category = model.CategoryLater
		} else {
			s.tasks[i].Category = model.CategoryCompleted
		}
		return nil
	}
	return common.ErrTaskNotFound
}

// SetPriority changes a task's priority. Priority is independent of the
// category bucket.
func (s *Session) SetPriority(taskID string, p model.Priority) error {
	if !p.Valid() {
		return common.ErrInvalidPriority
	}
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Priority = p
			return nil
		}
	}
	return common.ErrTaskNotFound
}

// DeleteTask removes a single task.
func (s *Session) DeleteTask(taskID string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrTaskNotFound
}

// DeleteRecording removes a single recording and returns it so the
// caller can release its playable file. Deleting the selected recording
// clears the selection.
func (s *Session) DeleteRecording(recordingID string) (model.Recording, error) {
	i := s.indexOfRecording(recordingID)
	if i < 0 {
		return model.Recording{}, common.ErrRecordingNotFound
	}

	rec := s.recordings[i]
	s.recordings = append(s.recordings[:i], s.recordings[i+1:]...)
	if s.selectedID == recordingID {
		s.selectedID = ""
	}
	return rec, nil
}

// ClearTasks removes every task.
func (s *Session) ClearTasks() {
	s.tasks = nil
}

// ClearRecordings removes every recording and returns them so the caller
// can release the playable files. The selection is cleared.
func (s *Session) ClearRecordings() []model.Recording {
	removed := s.recordings
	s.recordings = nil
	s.selectedID = ""
	return removed
}

// TasksByCategory filters the task list down to one bucket. In-bucket
// order is the underlying list order; there is no separate sort key.
func (s *Session) TasksByCategory(c model.Category) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

func (s *Session) indexOfRecording(id string) int {
	for i, r := range s.recordings {
		if r.ID == id {
			return i
		}
	}
	return -1
}
