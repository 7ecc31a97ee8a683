// Package fetcher retrieves module markdown by trying candidate paths in
// order until one succeeds.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrContentNotFound matches every *ContentNotFoundError.
var ErrContentNotFound = errors.New("content not found")

// ContentNotFoundError reports that every candidate failed.
type ContentNotFoundError struct {
	// Requested is the path the caller asked for, before encoding.
	Requested      string
	LastStatus     int
	LastStatusText string
	Attempts       int
	// Err is the last transport error, if the last attempt failed outright.
	Err error
}

func (e *ContentNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load %s after %d attempts: %v", e.Requested, e.Attempts, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %d %s", e.Requested, e.LastStatus, e.LastStatusText)
}

func (e *ContentNotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrContentNotFound) hold.
func (e *ContentNotFoundError) Is(target error) bool { return target == ErrContentNotFound }

// Result is a successful retrieval.
type Result struct {
	Body []byte
	// Path is the candidate that succeeded.
	Path     string
	Attempts int
}

// Fetcher tries candidates strictly one after another.
type Fetcher struct {
	transport Transport
	logger    *log.Logger
}

// New returns a Fetcher. A nil logger discards diagnostics.
func New(t Transport, logger *log.Logger) *Fetcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Fetcher{transport: t, logger: logger}
}

// Fetch attempts each candidate in order and returns the first success. No
// request is issued for a candidate until the previous one has failed.
// requested names the logical path for diagnostics.
func (f *Fetcher) Fetch(ctx context.Context, requested string, candidates []string) (*Result, error) {
	nf := &ContentNotFoundError{Requested: requested}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nf.Attempts++
		f.logger.Debug("fetching", "candidate", c, "attempt", nf.Attempts)

		resp, err := f.transport.Fetch(ctx, c)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			f.logger.Debug("fetch failed", "candidate", c, "err", err)
			nf.Err = err
			nf.LastStatus, nf.LastStatusText = 0, ""
			continue
		}
		if resp.OK {
			return &Result{Body: resp.Body, Path: c, Attempts: nf.Attempts}, nil
		}
		f.logger.Debug("candidate missed", "candidate", c, "status", resp.Status)
		nf.Err = nil
		nf.LastStatus, nf.LastStatusText = resp.Status, resp.StatusText
	}

	f.logger.Warn("content not found", "path", requested, "attempts", nf.Attempts, "status", nf.LastStatus)
	return nil, nf
}
