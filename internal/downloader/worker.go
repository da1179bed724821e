package downloader

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/mixtape-dl/mixtape/internal/progress"
	"github.com/mixtape-dl/mixtape/internal/utils"
)

// run executes one attempt end-to-end: spawn the tool with both streams
// captured, drain them concurrently into the buffer, wait for exit and
// publish the outcome. MarkDone is called exactly once, on every path.
//
// The terminal belongs to the render loop, so the child never inherits
// stdout or stderr.
func run(cfg *Config, buf *progress.Buffer, id string, destDir string, rawurl string) {
	bin := cfg.GetBinary()
	args := cfg.Args(destDir, rawurl)
	utils.Debug("[%s] spawning %s %v", shortID(id), bin, args)

	cmd := exec.Command(bin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		spawnFailed(buf, id, err)
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		spawnFailed(buf, id, err)
		return
	}

	if err := cmd.Start(); err != nil {
		spawnFailed(buf, id, err)
		return
	}

	// One drain per stream. Per-stream line order is preserved; stdout
	// and stderr interleave arbitrarily relative to each other.
	var g errgroup.Group
	g.Go(func() error { return drain(stdout, buf) })
	g.Go(func() error { return drain(stderr, buf) })

	if err := g.Wait(); err != nil {
		utils.Debug("[%s] stream drain error: %v", shortID(id), err)
	}

	err = cmd.Wait()
	if err != nil {
		utils.Debug("[%s] tool exited with error: %v", shortID(id), err)
	} else {
		utils.Debug("[%s] tool exited cleanly", shortID(id))
	}
	buf.MarkDone(err == nil)
}

// drain reads one stream to EOF, forwarding each line to the buffer. A
// line over the scanner cap stops line splitting; the remainder is still
// consumed so the child never blocks on a full pipe and Wait can return.
func drain(r io.Reader, buf *progress.Buffer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, ScannerInitialBuffer), ScannerMaxLine)
	for sc.Scan() {
		buf.Append(sc.Text())
	}
	if err := sc.Err(); err != nil {
		io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// spawnFailed records a failure for a process that never ran. Wait is
// never called on this path.
func spawnFailed(buf *progress.Buffer, id string, err error) {
	utils.Debug("[%s] spawn failed: %v", shortID(id), err)
	buf.Append(fmt.Sprintf("mixtape: failed to start downloader: %v", err))
	buf.MarkDone(false)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
