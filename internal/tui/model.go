package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mixtape-dl/mixtape/internal/core"
	"github.com/mixtape-dl/mixtape/internal/history"
	"github.com/mixtape-dl/mixtape/internal/library"
)

type UIState int

const (
	NameInputState UIState = iota // entering the mix name
	URLInputState                 // entering the source URL
	DownloadingState
	DoneState
	FailedState
)

// Input indices into RootModel.inputs.
const (
	nameInput = iota
	urlInput
)

// FailedText is the one diagnostic shown on any failed attempt. The
// underlying tool output stays available in the debug log.
const FailedText = "Download failed. Check your connection and URL."

type RootModel struct {
	state        UIState
	inputs       []textinput.Model
	focusedInput int
	spin         spinner.Model

	svc     core.DownloadService
	hist    *history.Store
	attempt *core.Attempt

	output  string // buffer snapshot, refreshed once per tick
	files   []library.Entry
	errText string

	width   int
	height  int
	version string
}

func InitialRootModel(version string, svc core.DownloadService, hist *history.Store) RootModel {
	nameIn := textinput.New()
	nameIn.Placeholder = "late night drive"
	nameIn.Focus()
	nameIn.Width = InputWidth
	nameIn.Prompt = ""

	urlIn := textinput.New()
	urlIn.Placeholder = "https://youtube.com/watch?v=..."
	urlIn.Width = InputWidth
	urlIn.Prompt = ""

	spin := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(SpinnerStyle),
	)

	return RootModel{
		state:   NameInputState,
		inputs:  []textinput.Model{nameIn, urlIn},
		spin:    spin,
		svc:     svc,
		hist:    hist,
		version: version,
	}
}

func (m RootModel) Init() tea.Cmd {
	return textinput.Blink
}
