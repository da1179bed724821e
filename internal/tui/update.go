package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mixtape-dl/mixtape/internal/history"
	"github.com/mixtape-dl/mixtape/internal/library"
	"github.com/mixtape-dl/mixtape/internal/utils"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != DownloadingState {
			// Drop the frame chain once the download view is gone.
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tickMsg:
		return m.pollProgress()

	case historyWrittenMsg:
		if msg.err != nil {
			utils.Debug("recording history: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case NameInputState, URLInputState:
		return m.handleEntryKey(msg)

	case DownloadingState:
		// Leaving here abandons the session, not the download: the
		// worker and its process keep running detached.
		if msg.String() == "esc" {
			return m, tea.Quit
		}
		return m, nil

	case DoneState, FailedState:
		if msg.String() == "enter" || msg.String() == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m RootModel) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "enter":
		if m.inputs[m.focusedInput].Value() == "" {
			// Nothing entered yet, stay put.
			return m, nil
		}
		if m.state == NameInputState {
			m.state = URLInputState
			m.inputs[nameInput].Blur()
			m.focusedInput = urlInput
			return m, m.inputs[urlInput].Focus()
		}
		return m.startDownload()

	case "ctrl+v":
		if text, err := clipboard.ReadAll(); err == nil {
			in := &m.inputs[m.focusedInput]
			in.SetValue(in.Value() + strings.TrimSpace(text))
			in.CursorEnd()
		} else {
			utils.Debug("clipboard read: %v", err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

func (m RootModel) startDownload() (tea.Model, tea.Cmd) {
	name := m.inputs[nameInput].Value()
	rawurl := m.inputs[urlInput].Value()

	m.attempt = m.svc.Start(name, rawurl)
	m.state = DownloadingState
	m.inputs[urlInput].Blur()

	utils.Debug("downloading %q from %s", name, rawurl)
	return m, tea.Batch(m.spin.Tick, pollTick())
}

// pollProgress runs once per tick while downloading: refresh the output
// snapshot, and on completion branch to the terminal state.
func (m RootModel) pollProgress() (tea.Model, tea.Cmd) {
	if m.state != DownloadingState || m.attempt == nil {
		// Stale tick from a state we already left.
		return m, nil
	}

	buf := m.attempt.Progress
	// Order matters: checking done before snapshotting guarantees the
	// snapshot taken after a positive check contains all output.
	done := buf.Done()
	m.output = buf.Snapshot()

	if !done {
		return m, pollTick()
	}

	if buf.Succeeded() {
		m.state = DoneState
		m.files = library.Scan(m.attempt.Dest)
	} else {
		m.state = FailedState
		m.errText = FailedText
	}
	return m, m.recordHistory()
}

// recordHistory persists the finished attempt off the event loop. A nil
// store (open failure at startup) makes this a no-op.
func (m RootModel) recordHistory() tea.Cmd {
	if m.hist == nil || m.attempt == nil {
		return nil
	}

	entry := history.Entry{
		ID:         m.attempt.ID,
		Name:       m.attempt.Name,
		URL:        m.attempt.URL,
		Success:    m.state == DoneState,
		Files:      len(m.files),
		StartedAt:  m.attempt.StartedAt,
		FinishedAt: time.Now(),
	}
	store := m.hist
	return func() tea.Msg {
		return historyWrittenMsg{err: store.Record(entry)}
	}
}

// updateFocusedInput relays remaining messages (cursor blinks mostly) to
// the focused entry field.
func (m RootModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != NameInputState && m.state != URLInputState {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}
