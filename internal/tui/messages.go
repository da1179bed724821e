package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// tickMsg drives one poll of the progress buffer while downloading.
	tickMsg time.Time

	// historyWrittenMsg reports the outcome of the async history insert.
	historyWrittenMsg struct {
		err error
	}
)

func pollTick() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
