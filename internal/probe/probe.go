// Package probe implements the URL preflight behind `mixtape check`. The
// download path never probes; this exists so users can sanity-check a URL
// before burning a full tool run on it.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfaronov/httpheader"

	"github.com/mixtape-dl/mixtape/internal/utils"
)

const (
	Timeout       = 10 * time.Second
	probeAttempts = 3
	retryDelay    = 1 * time.Second
)

var ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// Result contains what the server told us about a URL.
type Result struct {
	StatusCode    int
	FinalURL      string
	ContentType   string
	Filename      string
	FileSize      int64
	SupportsRange bool
	Server        string
}

// Check sends GET with Range: bytes=0-0 and summarizes the response
// headers. Retries transport errors a couple of times; header weirdness
// is reported, not retried.
func Check(ctx context.Context, rawurl string) (*Result, error) {
	utils.Debug("probing %s", rawurl)

	// Preserve headers across redirects so hosts that bounce through a
	// consent or CDN hop still see the UA.
	client := &http.Client{
		Timeout: Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			if len(via) > 0 {
				for key, vals := range via[0].Header {
					if key == "Range" {
						continue
					}
					req.Header[key] = vals
				}
			}
			return nil
		},
	}

	var resp *http.Response
	var err error
	for i := 0; i < probeAttempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
			utils.Debug("retrying probe, attempt %d", i+1)
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("building probe request: %w", reqErr)
		}
		req.Header.Set("Range", "bytes=0-0")
		req.Header.Set("User-Agent", ua)

		resp, err = client.Do(req)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("probe failed after %d attempts: %w", probeAttempts, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	result := &Result{
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
		Server:     resp.Header.Get("Server"),
	}

	mtype, _ := httpheader.ContentType(resp.Header)
	result.ContentType = mtype

	_, filename, _ := httpheader.ContentDisposition(resp.Header)
	result.Filename = filename

	switch resp.StatusCode {
	case http.StatusPartialContent:
		result.SupportsRange = true
		// Content-Range: bytes 0-0/TOTAL
		if cr := resp.Header.Get("Content-Range"); cr != "" {
			if idx := strings.LastIndex(cr, "/"); idx != -1 {
				if sizeStr := cr[idx+1:]; sizeStr != "*" {
					result.FileSize, _ = strconv.ParseInt(sizeStr, 10, 64)
				}
			}
		}
	default:
		if cl := resp.Header.Get("Content-Length"); cl != "" {
			result.FileSize, _ = strconv.ParseInt(cl, 10, 64)
		}
	}

	utils.Debug("probe complete: status=%d type=%s size=%d range=%v",
		result.StatusCode, result.ContentType, result.FileSize, result.SupportsRange)
	return result, nil
}
