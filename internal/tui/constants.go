package tui

import "time"

const (
	// Timeouts and Intervals
	PollInterval = 50 * time.Millisecond

	// Input Dimensions
	InputWidth = 50

	// Layout Offsets and Padding
	DefaultPaddingX = 1
	DefaultPaddingY = 0
	BoxWidth        = 68
	LabelWidth      = 7

	// Output tail shown while downloading
	OutputTailLines = 5
)
