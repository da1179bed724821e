package progress

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestBufferAppendSnapshot(t *testing.T) {
	b := NewBuffer()

	b.Append("[download] Destination: track.m4a")
	b.Append("[download] 100%")

	got := b.Snapshot()
	want := "[download] Destination: track.m4a\n[download] 100%\n"
	if got != want {
		t.Errorf("Snapshot() = %q, want %q", got, want)
	}
}

func TestBufferEmptySnapshot(t *testing.T) {
	b := NewBuffer()
	if got := b.Snapshot(); got != "" {
		t.Errorf("Snapshot of empty buffer = %q, want empty", got)
	}
	if b.Done() {
		t.Error("New buffer should not be done")
	}
}

func TestBufferMarkDone(t *testing.T) {
	tests := []struct {
		name      string
		succeeded bool
	}{
		{name: "Success", succeeded: true},
		{name: "Failure", succeeded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			b.Append("line")
			b.MarkDone(tt.succeeded)

			if !b.Done() {
				t.Fatal("Done() should be true after MarkDone")
			}
			if b.Succeeded() != tt.succeeded {
				t.Errorf("Succeeded() = %v, want %v", b.Succeeded(), tt.succeeded)
			}
		})
	}
}

// Two concurrent writers plus a snapshotting reader: every snapshot must
// consist of whole lines only, and the final output must contain every
// appended line.
func TestBufferConcurrentAppend(t *testing.T) {
	const perWriter = 500

	b := NewBuffer()
	var wg sync.WaitGroup

	wg.Add(2)
	for w := 0; w < 2; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				b.Append(fmt.Sprintf("writer%d-%04d", w, i))
			}
		}(w)
	}

	// Reader races with the writers
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for i := 0; i < 200; i++ {
			s := b.Snapshot()
			if s == "" {
				continue
			}
			if !strings.HasSuffix(s, "\n") {
				t.Errorf("Snapshot ends mid-line: %q", s[len(s)-20:])
				return
			}
			for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
				if !strings.HasPrefix(line, "writer") {
					t.Errorf("Torn line in snapshot: %q", line)
					return
				}
			}
		}
	}()

	wg.Wait()
	<-readerDone

	final := b.Snapshot()
	lines := strings.Split(strings.TrimSuffix(final, "\n"), "\n")
	if len(lines) != 2*perWriter {
		t.Fatalf("Final snapshot has %d lines, want %d", len(lines), 2*perWriter)
	}

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		seen[line] = true
	}
	for w := 0; w < 2; w++ {
		for i := 0; i < perWriter; i++ {
			if !seen[fmt.Sprintf("writer%d-%04d", w, i)] {
				t.Fatalf("Missing line writer%d-%04d", w, i)
			}
		}
	}
}

// Per-writer order must be preserved even though cross-writer interleaving
// is unspecified.
func TestBufferPerWriterOrder(t *testing.T) {
	const perWriter = 200

	b := NewBuffer()
	var wg sync.WaitGroup
	wg.Add(2)
	for w := 0; w < 2; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				b.Append(fmt.Sprintf("w%d %d", w, i))
			}
		}(w)
	}
	wg.Wait()

	last := map[string]int{"w0": -1, "w1": -1}
	for _, line := range strings.Split(strings.TrimSuffix(b.Snapshot(), "\n"), "\n") {
		var tag string
		var n int
		if _, err := fmt.Sscanf(line, "%s %d", &tag, &n); err != nil {
			t.Fatalf("Unparseable line %q: %v", line, err)
		}
		if n <= last[tag] {
			t.Fatalf("Out-of-order line for %s: %d after %d", tag, n, last[tag])
		}
		last[tag] = n
	}
}

func TestBufferDoneAfterAppends(t *testing.T) {
	b := NewBuffer()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			b.Append(fmt.Sprintf("line %d", i))
		}
		b.MarkDone(true)
	}()

	// Poll until the reader observes done, then the full output must be
	// visible on the next snapshot.
	for !b.Done() {
		time.Sleep(time.Millisecond)
	}
	s := b.Snapshot()
	if got := strings.Count(s, "\n"); got != 100 {
		t.Errorf("Observed done but snapshot has %d lines, want 100", got)
	}
	if !b.Succeeded() {
		t.Error("Succeeded should be visible once Done is observed")
	}
	<-done
}
