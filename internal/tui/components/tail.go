// Package components holds small standalone view helpers used by the
// root model.
package components

import "strings"

// TailModel renders the last lines of a process output stream, sized to
// fit a fixed-width pane.
type TailModel struct {
	Output string
	Lines  int // number of trailing lines to keep
	Width  int // per-line truncation width, 0 = unlimited
}

// NewTailModel creates a tail view over captured output.
func NewTailModel(output string, lines, width int) TailModel {
	return TailModel{
		Output: output,
		Lines:  lines,
		Width:  width,
	}
}

// View returns the last Lines lines of Output, each reduced to what a
// terminal would show (text after the last carriage return) and
// truncated to Width.
func (m TailModel) View() string {
	if m.Output == "" {
		return ""
	}

	lines := strings.Split(m.Output, "\n")
	// Snapshot text is newline-terminated; drop the empty trailing slot.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	keep := m.Lines
	if keep < 1 {
		keep = 1
	}
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		// Tools that redraw progress in place emit \r-separated
		// updates on one line; only the final segment is visible on a
		// real terminal.
		if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
			line = line[idx+1:]
		}
		out = append(out, truncate(line, m.Width))
	}
	return strings.Join(out, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
