package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mixtape-dl/mixtape/internal/tui/components"
	"github.com/mixtape-dl/mixtape/internal/utils"
)

func (m RootModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.state {
	case NameInputState, URLInputState:
		body = m.entryView()
	case DownloadingState:
		body = m.downloadingView()
	case DoneState:
		body = m.doneView()
	case FailedState:
		body = m.failedView()
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m RootModel) entryView() string {
	rows := []string{
		"",
		lipgloss.JoinHorizontal(lipgloss.Left,
			LabelStyle.Render("Name:"),
			m.inputs[nameInput].View(),
		),
		"",
	}

	if m.state == URLInputState {
		rows = append(rows,
			lipgloss.JoinHorizontal(lipgloss.Left,
				LabelStyle.Render("URL:"),
				m.inputs[urlInput].View(),
			),
			"",
		)
	}

	rows = append(rows,
		HintStyle.Render("[enter] confirm  [ctrl+v] paste  [esc] quit"),
		"",
	)

	content := lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return renderTitledBox(m.boxTitle(), content, BoxWidth, ColorSecondary)
}

func (m RootModel) downloadingView() string {
	head := lipgloss.JoinHorizontal(lipgloss.Left,
		m.spin.View(),
		" Downloading ",
		PathStyle.Render(truncateString(m.inputs[nameInput].Value(), BoxWidth-23)),
	)

	rows := []string{"", head, ""}

	tail := components.NewTailModel(m.output, OutputTailLines, BoxWidth-8).View()
	if tail != "" {
		rows = append(rows, OutputStyle.Render(tail), "")
	}

	rows = append(rows,
		HintStyle.Render("[esc] quit, the download keeps running"),
		"",
	)

	content := lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return renderTitledBox(m.boxTitle(), content, BoxWidth, ColorPrimary)
}

func (m RootModel) doneView() string {
	rows := []string{
		"",
		SuccessStyle.Render("Download complete"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Left,
			LabelStyle.Render("Saved:"),
			PathStyle.Render(truncateString(utils.DisplayPath(m.attempt.Dest), BoxWidth-16)),
		),
		"",
	}

	if len(m.files) == 0 {
		rows = append(rows, HintStyle.Render("No tracks found in the destination."))
	}
	for _, f := range m.files {
		meta := humanize.Bytes(uint64(f.Size))
		if f.Kind != "" {
			meta += "  " + f.Kind
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left,
			EntryNameStyle.Render(truncateString(f.Name, BoxWidth-28)),
			EntryMetaStyle.Render("  "+meta),
		))
	}

	rows = append(rows, "", HintStyle.Render("[enter] quit"), "")

	content := lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return renderTitledBox(m.boxTitle(), content, BoxWidth, ColorSuccess)
}

func (m RootModel) failedView() string {
	rows := []string{
		"",
		ErrorStyle.Render(m.errText),
		"",
		HintStyle.Render("[enter] quit"),
		"",
	}

	content := lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return renderTitledBox(m.boxTitle(), content, BoxWidth, ColorError)
}

func (m RootModel) boxTitle() string {
	if m.version == "" {
		return "mixtape"
	}
	return "mixtape " + m.version
}

func truncateString(s string, i int) string {
	runes := []rune(s)
	if len(runes) > i {
		return string(runes[:i]) + "..."
	}
	return s
}

// renderTitledBox draws a rounded box with the title embedded in the top
// border:  ╭─ title ─────────╮
func renderTitledBox(title string, content string, width int, borderColor lipgloss.Color) string {
	const (
		topLeft     = "╭"
		topRight    = "╮"
		bottomLeft  = "╰"
		bottomRight = "╯"
		horizontal  = "─"
		vertical    = "│"
	)

	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleText := fmt.Sprintf(" %s ", title)
	remaining := innerWidth - lipgloss.Width(titleText) - 1
	if remaining < 0 {
		remaining = 0
	}

	topBorder := borderStyle.Render(topLeft+horizontal) +
		lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(titleText) +
		borderStyle.Render(strings.Repeat(horizontal, remaining)+topRight)

	bottomBorder := borderStyle.Render(
		bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight,
	)

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line += strings.Repeat(" ", innerWidth-lineWidth)
		}
		lines = append(lines, borderStyle.Render(vertical)+line+borderStyle.Render(vertical))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		topBorder,
		strings.Join(lines, "\n"),
		bottomBorder,
	)
}
