package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Response is the outcome of one retrieval attempt.
type Response struct {
	OK         bool
	Status     int
	StatusText string
	Body       []byte
}

// Transport performs a single retrieval for a candidate path. A non-nil
// error means the attempt could not be made at all; a reachable but missing
// document is reported through Response.OK.
type Transport interface {
	Fetch(ctx context.Context, path string) (Response, error)
}

// HTTPTransport fetches candidates relative to a site URL.
type HTTPTransport struct {
	Base   *url.URL
	Client *http.Client
}

// NewHTTPTransport parses base and returns a transport using the default
// client.
func NewHTTPTransport(base string) (*HTTPTransport, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing site url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("site url %q must be absolute", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPTransport{Base: u, Client: http.DefaultClient}, nil
}

// Fetch implements Transport. Candidates are already percent-encoded, so
// they are resolved as URL references rather than re-escaped.
func (t *HTTPTransport) Fetch(ctx context.Context, p string) (Response, error) {
	ref, err := url.Parse(p)
	if err != nil {
		return Response{}, fmt.Errorf("parsing candidate %q: %w", p, err)
	}
	target := t.Base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return Response{}, err
	}
	resp, err := t.Client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	out := Response{
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
	}
	if !out.OK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, nil
	}
	out.Body, err = io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading %s: %w", target, err)
	}
	return out, nil
}

// FSTransport reads candidates from a content directory. Root-absolute
// candidates are taken relative to the directory, and ".." never escapes it.
type FSTransport struct {
	Dir string
}

// Fetch implements Transport.
func (t *FSTransport) Fetch(ctx context.Context, p string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	decoded, err := url.PathUnescape(p)
	if err != nil {
		return Response{OK: false, Status: http.StatusBadRequest, StatusText: http.StatusText(http.StatusBadRequest)}, nil
	}
	clean := path.Clean("/" + decoded)
	full := filepath.Join(t.Dir, filepath.FromSlash(clean))

	data, err := os.ReadFile(full)
	switch {
	case err == nil:
		return Response{OK: true, Status: http.StatusOK, StatusText: http.StatusText(http.StatusOK), Body: data}, nil
	case errors.Is(err, fs.ErrNotExist):
		return Response{Status: http.StatusNotFound, StatusText: http.StatusText(http.StatusNotFound)}, nil
	case errors.Is(err, fs.ErrPermission):
		return Response{Status: http.StatusForbidden, StatusText: http.StatusText(http.StatusForbidden)}, nil
	default:
		// Directories and other read failures look like a missing document.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return Response{Status: http.StatusNotFound, StatusText: http.StatusText(http.StatusNotFound)}, nil
		}
		return Response{}, err
	}
}
