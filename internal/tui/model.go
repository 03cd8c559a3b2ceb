// Package tui implements the interactive terminal client: four tabs over
// the session state, a microphone recorder, and transcription requests
// against the endpoint.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/whisperlist/whisperlist/internal/llm"
	"github.com/whisperlist/whisperlist/internal/model"
	"github.com/whisperlist/whisperlist/internal/session"
)

// AudioRecorder is the microphone capture device the record tab drives.
type AudioRecorder interface {
	Start() error
	Stop() ([]byte, error)
}

// Transcriber issues one transcription request per recording.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, name string) (llm.Buckets, error)
}

// Config holds everything the client needs to run.
type Config struct {
	Recorder    AudioRecorder
	Transcriber Transcriber
	DataDir     string // where playable WAV files are written
}

// Model is the bubbletea model for the client.
type Model struct {
	session      *session.Session
	recorder     AudioRecorder
	transcriber  Transcriber
	dataDir      string
	keymap       KeyMap
	spinner      spinner.Model
	cursor       int
	width        int
	height       int
	confirmClear bool
	quitting     bool
}

func newModel(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session:     session.New(),
		recorder:    cfg.Recorder,
		transcriber: cfg.Transcriber,
		dataDir:     cfg.DataDir,
		keymap:      DefaultKeyMap(),
		spinner:     sp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordingFailedMsg:
		m.session.AbortRecording(msg.err)
		return m, nil

	case recordingStoppedMsg:
		if msg.err != nil {
			m.session.AbortRecording(msg.err)
			return m, nil
		}
		if _, err := m.session.StopRecording(msg.blob, msg.path); err != nil {
			m.session.AbortRecording(err)
		}
		return m, nil

	case transcribeResultMsg:
		m.session.FinishTranscribe(msg.recordingID, msg.buckets, msg.err)
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending bulk-clear confirmation eats the next keypress.
	if m.confirmClear {
		m.confirmClear = false
		if key.Matches(msg, m.keymap.Confirm) {
			switch m.session.ActiveTab() {
			case session.TabTasks:
				m.session.ClearTasks()
			case session.TabRecordings:
				removed := m.session.ClearRecordings()
				releaseRecordings(removed)
			}
			m.cursor = 0
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.session.Recorder() == session.RecorderRecording {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.TabRecord):
		m.switchTab(session.TabRecord)
	case key.Matches(msg, m.keymap.TabTasks):
		m.switchTab(session.TabTasks)
	case key.Matches(msg, m.keymap.TabRecordings):
		m.switchTab(session.TabRecordings)
	case key.Matches(msg, m.keymap.TabHelp):
		m.switchTab(session.TabHelp)
	case key.Matches(msg, m.keymap.NextTab):
		m.switchTab((m.session.ActiveTab() + 1) % 4)

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Record):
		return m.handleRecordKey()

	case key.Matches(msg, m.keymap.Transcribe):
		return m.handleTranscribeKey()

	case key.Matches(msg, m.keymap.Toggle):
		if t, ok := m.taskUnderCursor(); ok {
			_ = m.session.ToggleTask(t.ID)
		}

	case key.Matches(msg, m.keymap.Priority):
		if t, ok := m.taskUnderCursor(); ok {
			_ = m.session.SetPriority(t.ID, nextPriority(t.Priority))
		}

	case key.Matches(msg, m.keymap.Delete):
		m.handleDeleteKey()

	case key.Matches(msg, m.keymap.Clear):
		tab := m.session.ActiveTab()
		if tab == session.TabTasks || tab == session.TabRecordings {
			m.confirmClear = true
		}
	}

	return m, nil
}

func (m Model) handleRecordKey() (tea.Model, tea.Cmd) {
	if m.session.ActiveTab() != session.TabRecord {
		return m, nil
	}

	if m.session.Recorder() == session.RecorderRecording {
		return m, stopRecordingCmd(m.recorder, m.dataDir)
	}

	// Transition before the device command runs so a repeated keypress
	// routes to stop instead of dispatching a second start.
	m.session.ClearError()
	if err := m.session.StartRecording(); err != nil {
		return m, nil
	}
	return m, startRecordingCmd(m.recorder)
}

func (m Model) handleTranscribeKey() (tea.Model, tea.Cmd) {
	// Coarse mutual exclusion: one request at a time, system-wide.
	if m.session.Transcribing() {
		return m, nil
	}

	rec, ok := m.recordingForTranscribe()
	if !ok {
		return m, nil
	}

	if err := m.session.BeginTranscribe(rec.ID); err != nil {
		return m, nil
	}
	return m, transcribeCmd(m.transcriber, rec)
}

func (m *Model) handleDeleteKey() {
	switch m.session.ActiveTab() {
	case session.TabTasks:
		if t, ok := m.taskUnderCursor(); ok {
			_ = m.session.DeleteTask(t.ID)
			m.clampCursor()
		}
	case session.TabRecordings:
		if r, ok := m.recordingUnderCursor(); ok {
			if removed, err := m.session.DeleteRecording(r.ID); err == nil {
				releaseRecordings([]model.Recording{removed})
			}
			m.clampCursor()
		}
	}
}

// recordingForTranscribe picks the recording a transcribe key refers to:
// the one under the cursor on the recordings tab, else the selected one.
func (m Model) recordingForTranscribe() (model.Recording, bool) {
	if m.session.ActiveTab() == session.TabRecordings {
		if r, ok := m.recordingUnderCursor(); ok {
			return r, true
		}
	}
	return m.session.SelectedRecording()
}

func (m *Model) switchTab(t session.Tab) {
	m.session.SetTab(t)
	m.cursor = 0
	m.confirmClear = false
}

func (m Model) listLen() int {
	switch m.session.ActiveTab() {
	case session.TabTasks:
		return len(m.session.Tasks())
	case session.TabRecordings:
		return len(m.session.Recordings())
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.listLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) taskUnderCursor() (model.Task, bool) {
	tasks := m.session.Tasks()
	if m.session.ActiveTab() != session.TabTasks || m.cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m Model) recordingUnderCursor() (model.Recording, bool) {
	recs := m.session.Recordings()
	if m.session.ActiveTab() != session.TabRecordings || m.cursor >= len(recs) {
		return model.Recording{}, false
	}
	return recs[m.cursor], true
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	default:
		return model.PriorityLow
	}
}
