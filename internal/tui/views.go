package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/whisperlist/whisperlist/internal/model"
	"github.com/whisperlist/whisperlist/internal/session"
)

var tabNames = []string{"Record", "Tasks", "Recordings", "Help"}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.session.ActiveTab() {
	case session.TabRecord:
		b.WriteString(m.renderRecordTab())
	case session.TabTasks:
		b.WriteString(m.renderTasksTab())
	case session.TabRecordings:
		b.WriteString(m.renderRecordingsTab())
	case session.TabHelp:
		b.WriteString(m.renderHelpTab())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderTabBar() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if session.Tab(i) == m.session.ActiveTab() {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderRecordTab() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Voice Memo"))
	b.WriteString("\n")

	if m.session.Recorder() == session.RecorderRecording {
		b.WriteString(recordingStyle.Render("● recording"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("press r to stop"))
	} else {
		b.WriteString("microphone idle\n\n")
		b.WriteString(dimStyle.Render("press r to start recording"))
	}

	if rec, ok := m.session.SelectedRecording(); ok {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("last recording: %s", rec.CreatedAt.Format("15:04:05")))
		if !m.session.Transcribing() {
			b.WriteString(dimStyle.Render("  (t to transcribe)"))
		}
	}

	return b.String()
}

func (m Model) renderTasksTab() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n")

	if len(m.session.Tasks()) == 0 {
		b.WriteString(dimStyle.Render("no tasks yet: record a memo and transcribe it"))
		return b.String()
	}

	// The three buckets are a strict partition of the task set.
	for _, group := range []struct {
		name     string
		category model.Category
	}{
		{"URGENT", model.CategoryUrgent},
		{"LATER", model.CategoryLater},
		{"COMPLETED", model.CategoryCompleted},
	} {
		tasks := m.session.TasksByCategory(group.category)
		if len(tasks) == 0 {
			continue
		}

		b.WriteString(dimStyle.Render(group.name))
		b.WriteString("\n")
		for _, t := range tasks {
			b.WriteString(m.renderTaskLine(t))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderTaskLine(t model.Task) string {
	tasks := m.session.Tasks()
	cursorOn := false
	for i, other := range tasks {
		if other.ID == t.ID && i == m.cursor {
			cursorOn = true
			break
		}
	}

	marker := "[ ]"
	style := laterStyle
	switch t.Category {
	case model.CategoryUrgent:
		style = urgentStyle
	case model.CategoryCompleted:
		marker = "[x]"
		style = completedStyle
	}

	line := fmt.Sprintf("%s %s (%s)", marker, t.Text, t.Priority)
	if cursorOn {
		return cursorStyle.Render("> ") + style.Render(line)
	}
	return "  " + style.Render(line)
}

func (m Model) renderRecordingsTab() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recordings"))
	b.WriteString("\n")

	recs := m.session.Recordings()
	if len(recs) == 0 {
		b.WriteString(dimStyle.Render("no recordings yet"))
		return b.String()
	}

	selected, hasSelected := m.session.SelectedRecording()
	for i, r := range recs {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("%s  %d bytes", r.CreatedAt.Format("15:04:05"), len(r.Blob))
		if hasSelected && r.ID == selected.ID {
			line += dimStyle.Render("  (selected)")
		}
		if r.Transcript != "" {
			line += dimStyle.Render("  ✓ transcribed")
		}

		b.WriteString(prefix + line + "\n")
		if i == m.cursor && r.Transcript != "" {
			for _, tl := range strings.Split(r.Transcript, "\n") {
				b.WriteString(dimStyle.Render("      "+tl) + "\n")
			}
		}
	}

	return b.String()
}

func (m Model) renderHelpTab() string {
	help := [][2]string{
		{"1/2/3/4", "switch tabs"},
		{"tab", "next tab"},
		{"r / space", "start or stop recording"},
		{"t", "transcribe recording"},
		{"j/k", "move cursor"},
		{"x / enter", "toggle task complete"},
		{"p", "cycle task priority"},
		{"d", "delete task or recording"},
		{"C then y", "clear current list"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n")
	for _, h := range help {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", h[0], dimStyle.Render(h[1])))
	}
	return b.String()
}

func (m Model) renderStatus() string {
	var parts []string

	if m.session.Transcribing() {
		parts = append(parts, m.spinner.View()+" transcribing…")
	}
	if m.confirmClear {
		parts = append(parts, errorStyle.Render("clear everything on this tab? press y to confirm"))
	}
	if err := m.session.LastError(); err != nil {
		parts = append(parts, errorStyle.Render(err.Error()))
	}
	if len(parts) == 0 {
		parts = append(parts, dimStyle.Render("? for help"))
	}

	return statusStyle.Render(strings.Join(parts, "  "))
}
