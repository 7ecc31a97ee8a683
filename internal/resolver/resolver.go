// Package resolver turns a module page request into the ordered list of
// paths the fetcher should try. It does no I/O.
package resolver

import (
	"strings"

	"github.com/ziadkadry99/docbrowser/internal/config"
)

// Request identifies the page to locate and the roots to locate it under.
type Request struct {
	Module config.Module
	// File selects a sub-file when the module has several; out of range
	// selects the primary path.
	File int
	// Root is the deployment root detected at startup.
	Root Root
	// Redetected is a fresh detection of the root. It only contributes a
	// candidate when it differs from Root.
	Redetected Root
}

// SelectedPath returns the raw, unencoded path the request points at.
func (r Request) SelectedPath() string {
	if r.Module.HasFiles() && r.File >= 0 && r.File < len(r.Module.Files) {
		return r.Module.Files[r.File].Path
	}
	return r.Module.Path
}

func (r Request) primarySelected() bool {
	return trimDot(r.SelectedPath()) == trimDot(r.Module.Path)
}

// Candidates returns the fetch candidates for req, most preferred first:
//
//  1. root + selected path
//  2. root + each alternate path (primary page only)
//  3. the root-absolute path, when the root is a sub-path
//  4. the re-detected root + selected path, when it differs
//  5. the bare relative path
//
// Every path is percent-encoded per segment. Duplicates keep their first
// position.
func Candidates(req Request) []string {
	selected := EncodePath(req.SelectedPath())

	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	add(join(req.Root, selected))

	if req.primarySelected() {
		for _, alt := range req.Module.AltPaths {
			add(join(req.Root, EncodePath(alt)))
		}
	}

	if req.Root.Prefixed() {
		add("/" + strings.TrimPrefix(selected, "/"))
	}

	if req.Redetected != "" && req.Redetected != req.Root {
		add(join(req.Redetected, selected))
	}

	add(selected)
	return out
}

// join prefixes an encoded path with the root. A non-prefixed root leaves
// the path relative to the page.
func join(root Root, encoded string) string {
	if !root.Prefixed() {
		return encoded
	}
	return string(root) + strings.TrimPrefix(encoded, "/")
}

// Dir returns the encoded directory of a raw module path, without a
// trailing slash. Relative assets in rendered markdown hang off it.
func Dir(raw string) string {
	p := EncodePath(raw)
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	return p[:i]
}

// EncodePath drops a leading "./" and percent-encodes every segment the way
// encodeURIComponent does, leaving "." and ".." segments untouched.
func EncodePath(raw string) string {
	segments := strings.Split(trimDot(raw), "/")
	for i, seg := range segments {
		switch seg {
		case "", ".", "..":
			continue
		}
		segments[i] = EncodeComponent(seg)
	}
	return strings.Join(segments, "/")
}

func trimDot(p string) string {
	return strings.TrimPrefix(p, "./")
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent escapes s like JavaScript's encodeURIComponent: everything
// except ASCII letters, digits and -_.!~*'() is percent-encoded as UTF-8.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
