// Package library locates the audio files a finished attempt produced.
package library

import (
	"os"
	"path/filepath"

	"github.com/h2non/filetype"

	"github.com/mixtape-dl/mixtape/internal/utils"
)

// audioExt is the container the tool is asked to produce.
const audioExt = ".m4a"

// sniffLen is the number of leading bytes filetype needs for a match.
const sniffLen = 261

// Entry is one discovered result file.
type Entry struct {
	Name string
	Size int64
	Kind string // sniffed MIME type, empty when unknown
}

// Scan lists dir non-recursively and collects the .m4a entries in
// filesystem enumeration order. All errors are absorbed: a missing or
// unreadable directory yields no entries.
func Scan(dir string) []Entry {
	f, err := os.Open(dir)
	if err != nil {
		utils.Debug("scanning %s: %v", dir, err)
		return nil
	}
	defer f.Close()

	// ReadDir on the handle keeps the filesystem's own order,
	// unlike the sorted os.ReadDir.
	dirents, err := f.ReadDir(-1)
	if err != nil {
		utils.Debug("listing %s: %v", dir, err)
		return nil
	}

	var out []Entry
	for _, d := range dirents {
		if d.IsDir() || filepath.Ext(d.Name()) != audioExt {
			continue
		}
		e := Entry{Name: d.Name()}
		if info, err := d.Info(); err == nil {
			e.Size = info.Size()
		}
		e.Kind = sniffKind(filepath.Join(dir, d.Name()))
		out = append(out, e)
	}
	return out
}

// sniffKind reads the file head and reports its detected MIME type.
func sniffKind(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, _ := f.Read(head)
	if n == 0 {
		return ""
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
