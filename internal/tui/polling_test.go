package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mixtape-dl/mixtape/internal/core"
)

// startedModel drives a model through both entry states so it sits in
// DownloadingState with one fake attempt.
func startedModel(t *testing.T) (RootModel, *fakeService) {
	t.Helper()
	m, svc := newTestModel(t)
	m = typeString(t, m, "Chill")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeString(t, m, "http://example/1")
	m, _ = press(t, m, tea.KeyEnter)
	if m.state != DownloadingState {
		t.Fatalf("state = %v, want DownloadingState", m.state)
	}
	return m, svc
}

func tick(t *testing.T, m RootModel) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tickMsg(time.Now()))
	return next.(RootModel), cmd
}

func TestTickRefreshesSnapshot(t *testing.T) {
	m, svc := startedModel(t)
	at := svc.last()

	at.Progress.Append("[download] Destination: track.m4a")
	at.Progress.Append("[download]  42.3% of 4.00MiB")

	m, cmd := tick(t, m)
	if m.state != DownloadingState {
		t.Fatalf("finished early: state = %v", m.state)
	}
	if !strings.Contains(m.output, "[download]  42.3% of 4.00MiB") {
		t.Errorf("snapshot missing output, got %q", m.output)
	}
	if cmd == nil {
		t.Error("tick not re-armed while still downloading")
	}
}

func TestTickObservesSuccess(t *testing.T) {
	m, svc := startedModel(t)
	at := svc.last()

	if err := os.MkdirAll(at.Dest, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(at.Dest, "track.m4a"), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	at.Progress.Append("[download] 100% of 4.00MiB")
	at.Progress.MarkDone(true)

	m, _ = tick(t, m)
	if m.state != DoneState {
		t.Fatalf("state = %v, want DoneState", m.state)
	}
	if len(m.files) != 1 || m.files[0].Name != "track.m4a" {
		t.Fatalf("files = %+v, want the one planted track", m.files)
	}
	// The terminal snapshot includes everything written before done.
	if !strings.Contains(m.output, "[download] 100% of 4.00MiB") {
		t.Errorf("final snapshot incomplete: %q", m.output)
	}
}

func TestTickObservesFailure(t *testing.T) {
	m, svc := startedModel(t)
	at := svc.last()

	at.Progress.Append("ERROR: unable to download webpage")
	at.Progress.MarkDone(false)

	m, _ = tick(t, m)
	if m.state != FailedState {
		t.Fatalf("state = %v, want FailedState", m.state)
	}
	if m.errText != FailedText {
		t.Errorf("errText = %q, want %q", m.errText, FailedText)
	}
	if len(m.files) != 0 {
		t.Errorf("files scanned on failure: %+v", m.files)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, svc := startedModel(t)
	at := svc.last()
	at.Progress.MarkDone(true)

	m, _ = tick(t, m)
	if m.state != DoneState {
		t.Fatalf("state = %v, want DoneState", m.state)
	}

	// A tick delivered after the transition must neither re-arm nor
	// change anything.
	next, cmd := tick(t, m)
	if next.state != DoneState {
		t.Errorf("stale tick moved state to %v", next.state)
	}
	if cmd != nil {
		t.Error("stale tick re-armed polling")
	}
}

func sendString(p *tea.Program, s string) {
	for _, r := range s {
		p.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func waitForAttempt(svc *fakeService, timeout time.Duration) *core.Attempt {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if at := svc.last(); at != nil {
			return at
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}

// TestProgramObservesCompletion runs the full headless program: entry
// keystrokes, a finished attempt, and the poll loop noticing it.
func TestProgramObservesCompletion(t *testing.T) {
	svc := &fakeService{root: t.TempDir()}
	m := InitialRootModel("test", svc, nil)

	p := tea.NewProgram(m, tea.WithoutRenderer(), tea.WithInput(nil))

	go func() {
		time.Sleep(50 * time.Millisecond)
		sendString(p, "Chill")
		p.Send(tea.KeyMsg{Type: tea.KeyEnter})
		sendString(p, "http://example/1")
		p.Send(tea.KeyMsg{Type: tea.KeyEnter})

		at := waitForAttempt(svc, 2*time.Second)
		if at == nil {
			p.Quit()
			return
		}

		_ = os.MkdirAll(at.Dest, 0o755)
		_ = os.WriteFile(filepath.Join(at.Dest, "track.m4a"), []byte("audio"), 0o644)
		at.Progress.Append("[download] 100%")
		at.Progress.MarkDone(true)

		// A handful of poll cycles is ample time to observe done.
		time.Sleep(300 * time.Millisecond)
		p.Send(tea.KeyMsg{Type: tea.KeyEnter})

		// Backstop in case the transition never happened.
		time.Sleep(500 * time.Millisecond)
		p.Quit()
	}()

	finalModel, err := p.Run()
	if err != nil {
		t.Fatalf("program failed: %v", err)
	}

	final := finalModel.(RootModel)
	if final.state != DoneState {
		t.Fatalf("final state = %v, want DoneState", final.state)
	}
	if len(final.files) != 1 || final.files[0].Name != "track.m4a" {
		t.Errorf("files = %+v, want the planted track", final.files)
	}
}

// TestProgramEscAbandonsDownload verifies that esc during the download
// exits the session while the attempt is still unfinished.
func TestProgramEscAbandonsDownload(t *testing.T) {
	svc := &fakeService{root: t.TempDir()}
	m := InitialRootModel("test", svc, nil)

	p := tea.NewProgram(m, tea.WithoutRenderer(), tea.WithInput(nil))

	go func() {
		time.Sleep(50 * time.Millisecond)
		sendString(p, "Chill")
		p.Send(tea.KeyMsg{Type: tea.KeyEnter})
		sendString(p, "http://example/1")
		p.Send(tea.KeyMsg{Type: tea.KeyEnter})

		if waitForAttempt(svc, 2*time.Second) == nil {
			p.Quit()
			return
		}
		p.Send(tea.KeyMsg{Type: tea.KeyEsc})
	}()

	finalModel, err := p.Run()
	if err != nil {
		t.Fatalf("program failed: %v", err)
	}

	final := finalModel.(RootModel)
	if final.state != DownloadingState {
		t.Errorf("final state = %v, want DownloadingState", final.state)
	}

	at := svc.last()
	if at == nil {
		t.Fatal("no attempt started")
	}
	if at.Progress.Done() {
		t.Error("exit path marked the buffer done")
	}
}
