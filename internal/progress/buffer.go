// Package progress holds the shared output buffer a download attempt
// writes into and the UI polls. One buffer lives exactly as long as one
// attempt.
package progress

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Buffer collects whole lines of tool output from concurrent writers and
// exposes point-in-time snapshots to a single polling reader. The
// done/succeeded pair is published after the final append, so a reader
// that observes Done sees the complete output on its next Snapshot.
type Buffer struct {
	mu   sync.Mutex
	text strings.Builder

	done      atomic.Bool
	succeeded atomic.Bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds one line of output. Safe for concurrent writers; a line is
// never interleaved with another.
func (b *Buffer) Append(line string) {
	b.mu.Lock()
	b.text.WriteString(line)
	b.text.WriteByte('\n')
	b.mu.Unlock()
}

// Snapshot returns the accumulated output. Always a whole-line prefix of
// the final output, never a torn line.
func (b *Buffer) Snapshot() string {
	b.mu.Lock()
	s := b.text.String()
	b.mu.Unlock()
	return s
}

// MarkDone records the terminal outcome. Called exactly once by the
// worker, as its final action. Succeeded is stored first so any reader
// observing Done sees the outcome.
func (b *Buffer) MarkDone(succeeded bool) {
	b.succeeded.Store(succeeded)
	b.done.Store(true)
}

// Done reports whether the attempt has finished. Non-blocking, pollable
// at arbitrary frequency.
func (b *Buffer) Done() bool {
	return b.done.Load()
}

// Succeeded is meaningful only after Done returns true.
func (b *Buffer) Succeeded() bool {
	return b.succeeded.Load()
}
