package resolver

import (
	"net/url"
	"strings"
)

// Root is the URL path prefix the site is served under: "/" at a domain root,
// "/repo/" for a GitHub Pages project site. It is computed once at startup and
// passed explicitly to whatever needs it.
type Root string

// DefaultRoot is used for local and custom-domain hosting.
const DefaultRoot Root = "/"

// NormalizeRoot returns s with exactly one leading and one trailing slash.
// An empty string becomes DefaultRoot.
func NormalizeRoot(s string) Root {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return DefaultRoot
	}
	return Root("/" + s + "/")
}

// Prefixed reports whether the root is a real sub-path prefix.
func (r Root) Prefixed() bool {
	return r != "" && r != DefaultRoot
}

func (r Root) String() string { return string(r) }

// DetectRoot derives the deployment root from the URL the site is reached
// at. Only GitHub Pages hosts are served from a sub-path; the first path
// segment is the repository name unless it is the index page itself.
func DetectRoot(siteURL string) Root {
	u, err := url.Parse(siteURL)
	if err != nil || !strings.Contains(u.Hostname(), "github.io") {
		return DefaultRoot
	}

	for _, part := range strings.Split(u.Path, "/") {
		if part == "" {
			continue
		}
		if part == "index.html" {
			break
		}
		return Root("/" + part + "/")
	}
	return DefaultRoot
}

// Detector yields the deployment root. Candidates ask it again when building
// the re-detection fallback, in case the first answer came from a stale
// environment.
type Detector interface {
	Detect() Root
}

// StaticRoot is a Detector that always answers with a configured root.
type StaticRoot Root

// Detect implements Detector.
func (s StaticRoot) Detect() Root { return NormalizeRoot(string(s)) }

// URLDetector re-reads a site URL on every call.
type URLDetector func() string

// Detect implements Detector.
func (f URLDetector) Detect() Root { return DetectRoot(f()) }
